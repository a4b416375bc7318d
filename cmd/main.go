package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"darionassist/internal/assist"
	"darionassist/internal/config"
	"darionassist/internal/dictfile"
	"darionassist/internal/httpapi"
	"darionassist/internal/vocabdict"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	vocab := assist.DefaultVocabulary
	if p := cfg.Dictionary.VocabularyPath; p != "" {
		if vocab, err = dictfile.LoadVocabulary(p); err != nil {
			log.Fatalf("vocabulary: %v", err)
		}
	}
	corrections := assist.DefaultCorrections
	if p := cfg.Dictionary.CorrectionsPath; p != "" {
		if corrections, err = dictfile.LoadCorrections(p); err != nil {
			log.Fatalf("corrections: %v", err)
		}
	}

	var dict *vocabdict.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dict = vocabdict.New(client)
	}

	engine := assist.New(vocab, corrections, dict, cfg.Suggest.Options()...)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      httpapi.New(engine).Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	log.Printf("listening on %s", cfg.Server.Addr)
	log.Fatal(srv.ListenAndServe())
}
