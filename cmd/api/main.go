package main

import (
	"fmt"
	"net/http"

	"github.com/talentwatch/retention-backend-go/internal/config"
	appHTTP "github.com/talentwatch/retention-backend-go/internal/handler/http"
	"github.com/talentwatch/retention-backend-go/internal/pkg/database"
	"github.com/talentwatch/retention-backend-go/internal/pkg/jwt"
	"github.com/talentwatch/retention-backend-go/internal/repository/postgresql"
	analyticsService "github.com/talentwatch/retention-backend-go/internal/service/analytics"
	authService "github.com/talentwatch/retention-backend-go/internal/service/auth"
	employeeService "github.com/talentwatch/retention-backend-go/internal/service/employee"
	referenceService "github.com/talentwatch/retention-backend-go/internal/service/reference"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	referenceRepo := postgresql.NewReferenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	referenceSvc := referenceService.NewReferenceService(referenceRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(employeeRepo, referenceRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	referenceHandler := appHTTP.NewReferenceHandler(referenceSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		referenceHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
