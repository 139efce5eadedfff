// Command derive is a debugging tool: it loads an actor from Redis, runs a
// full derive cycle, and prints the computed statistics. It can also trigger
// rest flows against the stored actor.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lucasdlb17/fvtt-trpg/internal/config"
	"github.com/lucasdlb17/fvtt-trpg/internal/dice"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/formula"
	"github.com/lucasdlb17/fvtt-trpg/internal/repositories/actors"
	"github.com/lucasdlb17/fvtt-trpg/internal/services/rest"
)

func main() {
	actorID := flag.String("actor", "", "actor ID to derive")
	doRest := flag.String("rest", "", "optionally perform a rest: short or long")
	newDay := flag.Bool("new-day", false, "treat the rest as carrying into a new day")
	flag.Parse()

	if *actorID == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis unavailable", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	repo := actors.NewRedisRepository(&actors.RedisRepoConfig{Client: client})
	evaluator := formula.NewLuaEvaluator()

	a, err := repo.Get(ctx, *actorID)
	if err != nil {
		logger.Fatal("failed to load actor", zap.String("actor_id", *actorID), zap.Error(err))
	}

	a.Reconcile(actor.DeriveOptions{Evaluator: evaluator, Settings: cfg.Settings})
	printJSON(a)
	for _, w := range a.PreparationWarnings {
		logger.Warn(w)
	}

	if *doRest == "" {
		return
	}

	svc := rest.NewService(&rest.ServiceConfig{
		Repository: repo,
		Roller:     dice.NewRandomRoller(),
		Evaluator:  evaluator,
		Settings:   cfg.Settings,
		Logger:     logger,
	})

	var result *rest.Result
	switch *doRest {
	case "short":
		result, err = svc.ShortRest(ctx, *actorID, &rest.ShortRestOptions{NewDay: *newDay})
	case "long":
		result, err = svc.LongRest(ctx, *actorID, &rest.LongRestOptions{NewDay: *newDay})
	default:
		logger.Fatal("unknown rest type", zap.String("rest", *doRest))
	}
	if err != nil {
		logger.Fatal("rest failed", zap.Error(err))
	}
	printJSON(result)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal output: %v", err)
	}
	fmt.Println(string(out))
}
