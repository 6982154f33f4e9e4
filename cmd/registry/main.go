// Package main - точка входа терминального приложения учёта студентов.
//
// Архитектура следует принципам Clean Architecture и DDD:
// - Domain: чистая бизнес-логика без внешних зависимостей
// - Application: оркестрация use cases (Commands/Queries)
// - Infrastructure: файловое хранилище, in-memory репозиторий, event bus
// - Interface: терминальное меню
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/campus-hub/student-registry/config"
	"github.com/campus-hub/student-registry/internal/application/command"
	"github.com/campus-hub/student-registry/internal/application/query"
	"github.com/campus-hub/student-registry/internal/infrastructure/messaging"
	"github.com/campus-hub/student-registry/internal/infrastructure/persistence/memory"
	"github.com/campus-hub/student-registry/internal/infrastructure/persistence/textfile"
	"github.com/campus-hub/student-registry/internal/interface/console"
	"github.com/campus-hub/student-registry/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. КОНФИГУРАЦИЯ
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Логи идут в stderr, терминальное меню занимает stdout.
	log := logger.New(logger.Options{
		Output:    os.Stderr,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.Observability.AddCaller,
	})

	log.Info("starting student registry",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("env", string(cfg.App.Environment)),
		logger.FilePath(cfg.Registry.DataFile),
	)

	ctx := context.Background()

	// ─────────────────────────────────────────────────────────────────────────
	// 2. ИНФРАСТРУКТУРА
	// ─────────────────────────────────────────────────────────────────────────
	repo := memory.NewRoster()
	store := textfile.NewStore(cfg.Registry.DataFile, log)

	bus := messaging.NewEventBus(log)
	bus.SubscribeAll(messaging.NewLoggingSubscriber(log))

	// ─────────────────────────────────────────────────────────────────────────
	// 3. APPLICATION LAYER (Commands / Queries)
	// ─────────────────────────────────────────────────────────────────────────
	handlers := console.Handlers{
		Register:     command.NewRegisterStudentHandler(repo, bus, log),
		Remove:       command.NewRemoveStudentHandler(repo, bus, log),
		Update:       command.NewUpdateStudentHandler(repo, bus, log),
		AddCourse:    command.NewAddCourseHandler(repo, bus, log),
		RemoveCourse: command.NewRemoveCourseHandler(repo, bus, log),
		StudyPlan:    command.NewStudyPlanHandler(repo, bus, log),
		Snapshot:     command.NewSnapshotHandler(repo, store, log),

		Get:    query.NewGetStudentHandler(repo),
		List:   query.NewListStudentsHandler(repo),
		Search: query.NewSearchStudentsHandler(repo),
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 4. ЗАГРУЗКА ДАННЫХ
	// ─────────────────────────────────────────────────────────────────────────
	loaded, err := handlers.Snapshot.HandleLoad(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	log.Info("roster loaded", logger.Count(loaded.Loaded))

	// ─────────────────────────────────────────────────────────────────────────
	// 5. ГЛАВНОЕ МЕНЮ
	// ─────────────────────────────────────────────────────────────────────────
	menu := console.NewMenu(os.Stdin, os.Stdout, handlers, log)
	if err := menu.Run(ctx); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	log.Info("shutdown complete")
	return nil
}
