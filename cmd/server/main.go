package main

import (
	"fmt"
	"net/http"

	"github.com/shubhampawale7/Acharya-Beena/config"
	"github.com/shubhampawale7/Acharya-Beena/db"
	"github.com/shubhampawale7/Acharya-Beena/db/mongo"
	"github.com/shubhampawale7/Acharya-Beena/db/postgres"
	"github.com/shubhampawale7/Acharya-Beena/handlers"
	"github.com/shubhampawale7/Acharya-Beena/middleware"
	"github.com/shubhampawale7/Acharya-Beena/repository"
	"github.com/shubhampawale7/Acharya-Beena/routes"
	"github.com/shubhampawale7/Acharya-Beena/utils"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	var userRepo repository.UserRepository
	var apptRepo repository.AppointmentRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		apptRepo = repository.NewPostgresAppointmentRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		mongoUsers := repository.NewMongoUserRepo(mg.Client)
		if err := mongoUsers.EnsureIndexes(); err != nil {
			panic(err)
		}
		userRepo = mongoUsers
		apptRepo = repository.NewMongoAppointmentRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	reportRepo := repository.NewReportRepository(apptRepo, userRepo)
	mailer := utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	deps := &routes.Deps{
		Users:        &handlers.UserHandler{Repo: userRepo, Secret: cfg.JWTSecret},
		Appointments: &handlers.AppointmentHandler{Repo: apptRepo},
		Admin:        &handlers.AdminHandler{UserRepo: userRepo, AppointmentRepo: apptRepo},
		Contact:      &handlers.ContactHandler{Mailer: mailer, Inbox: cfg.ContactInbox},
		Reports:      &handlers.ReportHandler{Repo: reportRepo, Renderer: utils.ChromeRenderer{}, Uploader: utils.R2Uploader{}},
		Astro:        &handlers.AstroHandler{},
		UserRepo:     userRepo,
		JWTSecret:    cfg.JWTSecret,
		Limiter:      middleware.NewRateLimiter(5, 10),
	}
	routes.SetupRoutes(deps)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		panic(err)
	}
}
