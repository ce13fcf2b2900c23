package config

type App struct {
	Port     string `env:"PORT" default:"3000"`
	MongoURI string `env:"MONGODB_URI,required"`
	DBName   string `env:"DB_NAME" default:"data"`
	Env      string `env:"APP_ENV" default:"dev"`
}
