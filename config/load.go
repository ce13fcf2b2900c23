package config

import (
	"log/slog"
	"os"
)

func Load() App {
	cfg := App{
		Port:     getenv("PORT", "3000"),
		MongoURI: must("MONGODB_URI"),
		DBName:   getenv("DB_NAME", "data"),
		Env:      getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		slog.Error("required env missing", "key", k)
		panic("missing env " + k)
	}
	return v
}
