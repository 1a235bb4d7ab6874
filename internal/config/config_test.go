package config

import (
	"flag"
	"testing"

	"github.com/anchore/go-testutils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runjot/runjot/runjot/presenter"
)

var update = flag.Bool("update", false, "update the *.golden files for config string output")

func TestEmptyConfigString(t *testing.T) {
	config := &Application{}
	actual := config.String()

	if *update {
		t.Logf("Updating Golden file")
		testutils.UpdateGoldenFileContents(t, []byte(actual))
	}

	expected := string(testutils.GetGoldenFileContents(t))
	if actual != expected {
		t.Errorf("Config string does not match expected\nactual: %s\nexpected: %s", actual, expected)
	}
}

func TestDefaultConfigString(t *testing.T) {
	config, err := LoadConfigFromFile(viper.New(), &CliOnlyOptions{
		ConfigPath: "../../runjot.yaml",
	})
	if err != nil {
		t.Fatalf("failed to load application config: \n\t%+v\n", err)
	}
	actual := config.String()

	if *update {
		t.Logf("Updating Golden file")
		testutils.UpdateGoldenFileContents(t, []byte(actual))
	}

	expected := string(testutils.GetGoldenFileContents(t))
	if actual != expected {
		t.Errorf("Config string does not match expected\nactual: %s\nexpected: %s", actual, expected)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	config, err := LoadConfigFromFile(viper.New(), &CliOnlyOptions{
		ConfigPath: "../../runjot.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "../../runjot.yaml", config.ConfigPath)
	assert.Equal(t, "runs.jsonl", config.LogFile)
	assert.False(t, config.RunIDs)
	assert.Equal(t, "json", config.Output)
	assert.Equal(t, presenter.JSONPresenter, config.PresenterOpt)
	assert.Equal(t, logrus.InfoLevel, config.Log.LevelOpt)
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		config      Application
		expectedLvl logrus.Level
		wantErr     bool
	}{
		{
			name: "quiet trumps everything",
			config: Application{
				Output: "json",
				Quiet:  true,
				Log:    Logging{Level: "debug"},
			},
			expectedLvl: logrus.PanicLevel,
		},
		{
			name: "explicit level",
			config: Application{
				Output: "json",
				Log:    Logging{Level: "warn"},
			},
			expectedLvl: logrus.WarnLevel,
		},
		{
			name: "single verbose flag",
			config: Application{
				Output:     "table",
				CliOptions: CliOnlyOptions{Verbosity: 1},
			},
			expectedLvl: logrus.InfoLevel,
		},
		{
			name: "stacked verbose flags",
			config: Application{
				Output:     "table",
				CliOptions: CliOnlyOptions{Verbosity: 3},
			},
			expectedLvl: logrus.DebugLevel,
		},
		{
			name: "default level",
			config: Application{
				Output: "json",
			},
			expectedLvl: logrus.ErrorLevel,
		},
		{
			name: "level and verbosity conflict",
			config: Application{
				Output:     "json",
				Log:        Logging{Level: "debug"},
				CliOptions: CliOnlyOptions{Verbosity: 1},
			},
			wantErr: true,
		},
		{
			name: "bad log level",
			config: Application{
				Output: "json",
				Log:    Logging{Level: "noisy"},
			},
			wantErr: true,
		},
		{
			name: "bad output",
			config: Application{
				Output: "csv",
			},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.config.Build()
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedLvl, test.config.Log.LevelOpt)
		})
	}
}
