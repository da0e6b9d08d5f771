// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	admissionRepo "medibook/database/repository/admission"
	appointmentRepo "medibook/database/repository/appointment"
	doctorRepo "medibook/database/repository/doctor"
	patientRepo "medibook/database/repository/patient"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/admission"
	"medibook/services/appointment"
	"medibook/services/doctor"
	"medibook/services/notification"
	"medibook/services/patient"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepo.NewMongoDoctorRepo()
	patRepo := patientRepo.NewMongoPatientRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	admRepo := admissionRepo.NewMongoAdmissionRepo()

	for name, ensure := range map[string]func() error{
		"doctors":      docRepo.EnsureIndexes,
		"patients":     patRepo.EnsureIndexes,
		"appointments": apptRepo.EnsureIndexes,
		"admissions":   admRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// reminder queue.
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()
	cron.InitReminderWorker(&notification.LogNotificationService{}, apptRepo)

	// services.
	appCache := utils.NewRedisCache(utils.GetCacheClient())
	doctorService := &doctor.DefaultDoctorService{
		Repo:  docRepo,
		Cache: appCache,
	}
	patientService := &patient.DefaultPatientService{
		Repo: patRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		DoctorRepo:      docRepo,
		PatientRepo:     patRepo,
		AppointmentRepo: apptRepo,
		Cache:           appCache,
		QueueClient:     queueClient,
	}
	admissionService := &admission.DefaultAdmissionService{
		Repo:        admRepo,
		DoctorRepo:  docRepo,
		PatientRepo: patRepo,
	}

	doctorHandler := handlers.NewDoctorHandler(doctorService)
	patientHandler := handlers.NewPatientHandler(patientService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	admissionHandler := handlers.NewAdmissionHandler(admissionService)

	routes.RegisterRoutes(router, doctorHandler, patientHandler, appointmentHandler, admissionHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
