package main

import (
	"time"

	"github.com/saikothasan/neno/internal/models"
)

type BenchCase struct {
	Kind     models.Kind
	Platform string
	Theme    string
}

type BenchResult struct {
	Kind     models.Kind
	Platform string
	Duration time.Duration
	Results  int
	Status   int
	Err      error
}

type Agg struct {
	Count        int
	Errors       int
	Total        time.Duration
	TotalResults int
}
