package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lavajato/internal/config"
	"lavajato/internal/db"
	"lavajato/internal/model"
	"lavajato/internal/repository"
)

const (
	demoEmail    = "demo@lavajato.local"
	demoPassword = "senha123"
)

func ptr[T any](v T) *T { return &v }

// Seeds a demo user with vehicles and a pending appointment for local
// development.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Appointment{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if hashErr != nil {
			log.Fatalf("Failed to hash demo password: %v", hashErr)
		}
		user = &model.User{
			OpenID:       "seed-demo-user",
			Name:         "Usuário Demo",
			Email:        demoEmail,
			PasswordHash: string(hash),
			Role:         "user",
			LastSignedIn: time.Now(),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s (id=%d)", demoEmail, user.ID)
	} else if err != nil {
		log.Fatalf("Failed to look up demo user: %v", err)
	} else {
		log.Printf("Demo user already present (id=%d), skipping seed", user.ID)
		return
	}

	vehicles := []model.Vehicle{
		{UserID: user.ID, Brand: "Toyota", Model: "Corolla", Plate: "ABC-1234", Color: ptr("Prata"), Year: ptr(2020)},
		{UserID: user.ID, Brand: "Honda", Model: "Civic", Plate: "XYZ-5678", Color: ptr("Preto"), Year: ptr(2022)},
	}
	for i := range vehicles {
		if err := vehicleRepo.Create(ctx, &vehicles[i]); err != nil {
			log.Fatalf("Failed to create vehicle %s: %v", vehicles[i].Plate, err)
		}
	}
	log.Printf("Created %d vehicles", len(vehicles))

	appointment := &model.Appointment{
		UserID:          user.ID,
		VehicleID:       vehicles[0].ID,
		ServiceType:     model.ServiceTypeSimple,
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		Status:          model.AppointmentStatusPending,
	}
	if err := appointmentRepo.Create(ctx, appointment); err != nil {
		log.Fatalf("Failed to create appointment: %v", err)
	}

	notification := &model.Notification{
		UserID:  user.ID,
		Title:   "Agendamento Criado",
		Message: "Seu agendamento de Lavagem Simples para " + appointment.AppointmentDate.Format("02/01/2006") + " foi criado com sucesso.",
		Type:    model.NotificationTypeAppointment,
	}
	if err := notificationRepo.Create(ctx, notification); err != nil {
		log.Fatalf("Failed to create notification: %v", err)
	}

	log.Println("Seed completed successfully!")
}
