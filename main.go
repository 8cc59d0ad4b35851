package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/activity"
	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/api"
	"github.com/airtribe-projects/task-manager-api-PrasadBhat4/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

func main() {
	// Load configuration from environment
	port := getEnvInt("PORT", 3000)
	allowOrigins := getEnv("CORS_ALLOWED_ORIGINS", "*")
	shutdownTimeout := getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	activityLimit := getEnvInt("ACTIVITY_LIMIT", 500)

	log.Println("=== Task Manager API ===")

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	logger := app.Logger()

	store := task.NewStore(task.WithSeed(task.SeedTasks(time.Now().UTC())...))

	apiModule := api.NewModule(api.Config{
		Addr:         ":" + strconv.Itoa(port),
		AllowOrigins: allowOrigins,
	}, logger)

	// Order: independent modules first, then modules with dependencies
	app.Register(activity.NewModule(activityLimit, logger)) // Event consumer (task events)
	app.Register(task.NewModule(store, logger))             // Core domain (emits events)
	app.Register(apiModule)                                 // Driving adapter (depends on task, activity)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(port)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(port int) {
	log.Println("")
	log.Printf("Server is listening on %d", port)
	log.Println("")
	log.Println("REST API Endpoints:")
	log.Println("  GET    /tasks                   - List tasks (?completed=true|false, ?sort=asc|desc)")
	log.Println("  GET    /tasks/:id               - Get a task by ID")
	log.Println("  GET    /tasks/priority/:level   - List tasks with priority low|medium|high")
	log.Println("  POST   /tasks                   - Create a task")
	log.Println("  PUT    /tasks/:id               - Replace a task")
	log.Println("  DELETE /tasks/:id               - Delete a task")
	log.Println("  GET    /activity                - Recent task activity (?limit=n)")
	log.Println("  GET    /health                  - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}

// getEnvDuration returns environment variable as duration or default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default: %s", key, value, defaultValue)
	}
	return defaultValue
}
