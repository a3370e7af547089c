package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the storage location from a .sal config file, the
// environment (SAL_ prefix), or the default under the home directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.sal.db")
	viper.SetDefault("speech.language", "he-IL")
	viper.SetConfigName(".sal") // .yaml is implicit
	viper.SetEnvPrefix("SAL")
	viper.AutomaticEnv()

	if override := os.Getenv("SAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		path = viper.GetString("path")
	}

	return &fileConfig{Path: path}, nil
}

// SpeechCommand returns the external transcription command, empty when the
// capability is not configured on this system.
func SpeechCommand() string {
	return viper.GetString("speech.command")
}

// SpeechLanguage returns the language tag handed to the transcription command.
func SpeechLanguage() string {
	return viper.GetString("speech.language")
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
