// SPDX-License-Identifier: ice License 1.0

package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//nolint:gochecknoinits // Configs are loaded once, for the whole runtime.
func init() {
	loadApplicationConfig()
	dotEnvPath := ".env"
	for i := 0; i < maxLookupDepth; i++ {
		if err := godotenv.Load(dotEnvPath); err == nil {
			break
		}
		dotEnvPath = filepath.Join("..", dotEnvPath)
	}
}

// MustLoadFromKey unmarshals the subtree of application.yaml rooted at key
// into cfg, panicking on malformed content.
func MustLoadFromKey(key string, cfg any) {
	if err := viper.UnmarshalKey(key, cfg); err != nil {
		log.Panic(errors.Wrapf(err, "failed to load config by key %q", key))
	}
}

func loadApplicationConfig() {
	for _, file := range candidateConfigFiles() {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(err)
		}
	}

	log.Panic(errors.New("could not find any application.yaml files"))
}

// candidateConfigFiles probes the working directory and its ancestors, the
// executable's directory, and the repository root relative to this source
// file, in that order.
func candidateConfigFiles() []string {
	var hints []string
	if dir, err := os.Getwd(); err == nil {
		for i := 0; i < maxLookupDepth; i++ {
			hints = append(hints, dir)
			dir = filepath.Dir(dir)
		}
	}
	if binary, err := os.Executable(); err == nil {
		hints = append(hints, filepath.Dir(binary))
	}
	//nolint:dogsled // Only the caller file is needed.
	if _, callerFile, _, ok := runtime.Caller(0); ok {
		hints = append(hints, filepath.Join(filepath.Dir(callerFile), ".."))
	}

	files := make([]string, 0, 2*len(hints)) //nolint:gomnd // Two candidates per hint.
	for _, dir := range hints {
		files = append(files, filepath.Join(dir, ".testdata", "application.yaml"), filepath.Join(dir, "application.yaml"))
	}

	return files
}

// Private API.

const (
	maxLookupDepth = 5
)
