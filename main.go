package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer"
	bookctrl "github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer/controller/book"
	borrowedctrl "github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer/controller/borrowed"
	"github.com/AbuBokorSiddik67/Library-Management-Server/app/echoServer/validation"
	"github.com/AbuBokorSiddik67/Library-Management-Server/config"
	bookrepo "github.com/AbuBokorSiddik67/Library-Management-Server/repository/book"
	borrowedrepo "github.com/AbuBokorSiddik67/Library-Management-Server/repository/borrowed"
	booksvc "github.com/AbuBokorSiddik67/Library-Management-Server/service/book"
	borrowsvc "github.com/AbuBokorSiddik67/Library-Management-Server/service/borrow"
	"github.com/AbuBokorSiddik67/Library-Management-Server/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: mongo client
	db, err := database.New(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close(ctx)

	// repos
	br := bookrepo.New(db.Collection("books"))
	lr := borrowedrepo.New(db.Collection("borrowedBooks"))

	// services
	bs := booksvc.New(br)
	ls := borrowsvc.New(lr, br)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, Log: log}
	borrowedC := &borrowedctrl.Controller{Svc: ls, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	echoServer.Register(e, echoServer.C{
		Book:     bookC,
		Borrowed: borrowedC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "3000"
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
