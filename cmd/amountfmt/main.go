package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/amountfmt/internal/batch"
	"github.com/iwvelando/amountfmt/internal/config"
	"github.com/iwvelando/amountfmt/internal/logging"
	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/output"
	"github.com/iwvelando/amountfmt/pkg/validation"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	currencyFlag := flag.String("currency", "", "currency override: "+strings.Join(constants.SupportedCurrencies(), ", "))
	mode := flag.String("mode", constants.ModeFormat, "conversion: format, parse, currency")
	flag.Parse()

	// A missing .env is normal.
	_ = godotenv.Load()

	conf, err := config.LoadConfiguration(resolveConfigPath(*configLocation))
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// An unusable config value was already reported as a warning.
	outputFormat := conf.Output.Format
	if validation.ValidateOutputFormat(outputFormat) != nil {
		outputFormat = constants.OutputFormatPretty
	}
	// CLI override takes precedence over config
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}

	if err := validation.ValidateMode(*mode); err != nil {
		logger.Fatal(err.Error(), zap.String("op", "main"))
	}

	code := conf.CurrencyCode()
	if *currencyFlag != "" {
		code, err = validation.ValidateCurrency(*currencyFlag)
		if err != nil {
			logger.Fatal("invalid currency override",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	values := flag.Args()
	if len(values) == 0 {
		values, err = readLines(os.Stdin)
		if err != nil {
			logger.Fatal("failed to read values from stdin",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	result := batch.Convert(*mode, code, values)
	logger.Debug("values converted",
		zap.String("op", "main"),
		zap.String("mode", *mode),
		zap.String("currency", string(code)),
		zap.Int("count", len(result.Rows)),
	)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(result); err != nil {
			logger.Fatal("failed to write JSON output",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}

// resolveConfigPath drops the default config file when it does not exist so
// the tool runs on defaults and environment overrides alone.
func resolveConfigPath(path string) string {
	if path != constants.DefaultConfigFile {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
