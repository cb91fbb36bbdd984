package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
	"github.com/schedulify/backend/internal/config"
	"github.com/schedulify/backend/internal/domain"
	"github.com/schedulify/backend/internal/scheduler"
	"github.com/schedulify/backend/internal/utils"
)

func main() {
	var (
		filePath string
		outPath  string
		seed     int64
	)

	flag.StringVar(&filePath, "file", "", "path to the generation request JSON")
	flag.StringVar(&outPath, "out", "", "path of the output file; if empty, the timetable is written to the standard output")
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducible runs; 0 seeds from the clock")
	flag.Parse()

	/**********************************************
	 * create logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * load configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load configuration", "error", err)
		os.Exit(1)
	}

	if filePath == "" {
		logger.Error("an input file must be specified")
		os.Exit(1)
	}

	/**********************************************
	 * read and validate the generation request
	 **********************************************/
	request, err := domain.GenerationRequestFromJSON(filePath)
	if err != nil {
		logger.Error("cannot read generation request", "error", err)
		os.Exit(1)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		logger.Error("cannot register validator translations", "error", err)
		os.Exit(1)
	}

	if err := validate.Struct(request); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if ok {
			logger.Error("invalid generation request", "error", validationErrors[0].Translate(trans))
		} else {
			logger.Error("invalid generation request", "error", err)
		}
		os.Exit(1)
	}

	if err := utils.ValidateGenerationRequest(request); err != nil {
		logger.Error("invalid generation request", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * run the optimization
	 **********************************************/
	parameters := &scheduler.Parameters{
		PopulationSize:  cfg.GA.PopulationSize,
		MaxGenerations:  cfg.GA.MaxGenerations,
		MutationRate:    cfg.GA.MutationRate,
		ElitismFraction: cfg.GA.ElitismFraction,
	}

	subjects := lo.Map(request.Subjects, func(subject domain.Subject, _ int) *domain.Subject {
		return &subject
	})
	rooms := lo.Map(request.Rooms, func(room domain.Room, _ int) *domain.Room {
		return &room
	})

	engine, err := scheduler.New(parameters, subjects, rooms, utils.NewRand(seed))
	if err != nil {
		logger.Error("cannot create scheduler", "error", err)
		os.Exit(1)
	}

	logger.Info("generating timetable",
		"subjects", len(subjects),
		"rooms", len(rooms),
		"requestedHours", utils.RequestedHours(request.Subjects),
		"populationSize", parameters.PopulationSize,
		"generations", parameters.MaxGenerations,
	)

	start := time.Now()
	result, err := engine.Schedule(context.Background())
	if err != nil {
		logger.Error("cannot generate timetable", "error", err)
		os.Exit(1)
	}

	if result.UnplacedHours > 0 {
		logger.Warn("not every requested hour fits into the weekly grid", "unplacedHours", result.UnplacedHours)
	}
	logger.Info("timetable generated", "fitness", result.Fitness, "duration", time.Since(start))

	/**********************************************
	 * write the timetable document
	 **********************************************/
	timetable := &domain.Timetable{
		Name:          request.Metadata.Name,
		Semester:      request.Metadata.Semester,
		Department:    request.Metadata.Department,
		AcademicYear:  request.Metadata.AcademicYear,
		Fitness:       result.Fitness,
		UnplacedHours: result.UnplacedHours,
		Schedule:      result.Schedule,
		CreatedAt:     time.Now(),
	}

	var payload []byte
	if cfg.Output.Pretty {
		payload, err = json.MarshalIndent(timetable, "", "  ")
	} else {
		payload, err = json.Marshal(timetable)
	}
	if err != nil {
		logger.Error("cannot marshal timetable", "error", err)
		os.Exit(1)
	}

	if outPath == "" {
		fmt.Println(string(payload))
	} else if err := os.WriteFile(outPath, payload, 0666); err != nil {
		logger.Error("cannot write output file", "error", err)
		os.Exit(1)
	}
}
