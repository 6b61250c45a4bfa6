package main

import (
	"context"
	"fmt"
	"log"

	"github.com/limbo/lockin/internal/repository"
	"github.com/limbo/lockin/internal/service"
	"github.com/limbo/lockin/internal/stats"
	"github.com/limbo/lockin/pkg/cleanup"
	"github.com/limbo/lockin/pkg/config"
	"github.com/limbo/lockin/pkg/dateutil"
)

func init() {
	service.InitValidator()
}

// Wires the stores together and prints today's plan. The real
// presentation layer drives the same service surface.
func main() {
	cfg := config.New()
	kv, err := repository.OpenKV(cfg.GetStringOrDefault("LOCKIN_DB_PATH", "lockin.db"))
	if err != nil {
		log.Fatal("opening kv store error: " + err.Error())
	}
	defer cleanup.CleanUp()

	ctx := context.Background()
	tasksService := service.NewTasksService(ctx,
		repository.NewTasksRepo(kv, cfg.GetString("LOCKIN_TASKS_KEY")))
	checkInsService := service.NewCheckInsService(ctx,
		repository.NewCheckInsRepo(kv, cfg.GetString("LOCKIN_CHECKINS_KEY")))

	today := dateutil.Today()
	fmt.Println("Lock In —", today)

	done, total := tasksService.ProgressOn(today)
	fmt.Printf("Today: %d/%d done\n", done, total)
	for _, task := range tasksService.TasksActiveOn(today) {
		marker := " "
		if task.Completed {
			marker = "x"
		}
		fmt.Printf("  [%s] %s\n", marker, task.Text)
	}

	if checkIn, err := checkInsService.CheckInFor(today); err == nil {
		fmt.Printf("Check-in: %s energy %d/10\n", checkIn.Feeling, checkIn.Mood)
	}

	if summary := tasksService.Statistics(); len(summary) > 0 {
		fmt.Println("Completion rates:")
		for _, s := range summary {
			recent := stats.Recent(s.History, 7)
			fmt.Printf("  %3d%% %-30s (%d/%d, %d recent)\n",
				s.CompletionRate, s.Task, s.TotalCompleted, s.TotalAssigned, len(recent))
		}
	}
}
