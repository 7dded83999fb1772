package repo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Repo struct {
	RepoRoot string
	Config   *Config
}

func (r *Repo) PrintContractsInfo(writer func(c string)) {
	writer(fmt.Sprintf("%s-repo: %s", AppName, r.RepoRoot))
	writer(fmt.Sprintf("rpc: %s (chain id %d)", r.Config.RPC.URL, r.Config.RPC.ChainID))
	writer(fmt.Sprintf("token: %s", r.Config.Contracts.Token))
	writer(fmt.Sprintf("vault: %s", r.Config.Contracts.Vault))
	writer(fmt.Sprintf("oracle: %s", r.Config.Contracts.Oracle))
}

// KeystorePath resolves the configured wallet keystore, empty when none is set.
func (r *Repo) KeystorePath() string {
	p := r.Config.Wallet.Keystore
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.RepoRoot, p)
}

func (r *Repo) KeystoreDir() string {
	return filepath.Join(r.RepoRoot, KeystoreDirName)
}

func (r *Repo) Flush() error {
	if err := writeConfigWithEnv(filepath.Join(r.RepoRoot, CfgFileName), r.Config); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

func writeConfigWithEnv(cfgPath string, config any) error {
	if err := writeConfig(cfgPath, config); err != nil {
		return err
	}
	// write back environment variables first
	if err := readConfigFromFile(cfgPath, config); err != nil {
		return errors.Wrapf(err, "failed to read cfg from environment")
	}
	if err := writeConfig(cfgPath, config); err != nil {
		return err
	}
	return nil
}

func writeConfig(cfgPath string, config any) error {
	raw, err := MarshalConfig(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfgPath, []byte(raw), 0644); err != nil {
		return err
	}

	return nil
}

func MarshalConfig(config any) (string, error) {
	buf := bytes.NewBuffer([]byte{})
	e := toml.NewEncoder(buf)
	e.SetIndentTables(true)
	e.SetArraysMultiline(true)
	err := e.Encode(config)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func Default(repoRoot string) (*Repo, error) {
	repoRoot, err := LoadRepoRootFromEnv(repoRoot)
	if err != nil {
		return nil, err
	}
	return &Repo{
		RepoRoot: repoRoot,
		Config:   DefaultConfig(),
	}, nil
}

// Load config from the repo root, falling back to the defaults (still subject to
// environment overrides) when no config file exists yet.
func Load(repoRoot string) (*Repo, error) {
	repoRoot, err := LoadRepoRootFromEnv(repoRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	return &Repo{
		RepoRoot: repoRoot,
		Config:   cfg,
	}, nil
}

func LoadConfig(repoRoot string) (*Config, error) {
	cfg := DefaultConfig()
	cfgPath := filepath.Join(repoRoot, CfgFileName)
	if _, err := os.Stat(cfgPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		if err := readConfig(viper.New(), cfg); err != nil {
			return nil, errors.Wrap(err, "failed to read config from environment")
		}
	} else if err := readConfigFromFile(cfgPath, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Check(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func LoadRepoRootFromEnv(repoRoot string) (string, error) {
	if repoRoot != "" {
		return repoRoot, nil
	}
	repoRoot = os.Getenv(rootPathEnvVar)
	var err error
	if len(repoRoot) == 0 {
		repoRoot, err = homedir.Expand(defaultRepoRoot)
	}
	return repoRoot, err
}

func readConfigFromFile(cfgFilePath string, config any) error {
	vp := viper.New()
	vp.SetConfigFile(cfgFilePath)
	vp.SetConfigType("toml")

	// only check types, viper does not have a strong type checking
	raw, err := os.ReadFile(cfgFilePath)
	if err != nil {
		return err
	}
	decoder := toml.NewDecoder(bytes.NewBuffer(raw))
	checker := reflect.New(reflect.TypeOf(config).Elem())
	if err := decoder.Decode(checker.Interface()); err != nil {
		var decodeError *toml.DecodeError
		if errors.As(err, &decodeError) {
			return errors.Errorf("check config formater failed from %s:\n%s", cfgFilePath, decodeError.String())
		}

		return errors.Wrapf(err, "check config formater failed from %s", cfgFilePath)
	}

	if err := vp.ReadInConfig(); err != nil {
		return err
	}
	return readConfig(vp, config)
}

func readConfig(vp *viper.Viper, config any) error {
	vp.AutomaticEnv()
	vp.SetEnvPrefix(envPrefix)
	replacer := strings.NewReplacer(".", "_")
	vp.SetEnvKeyReplacer(replacer)

	// without a config file viper only resolves env keys it already knows about
	if len(vp.AllKeys()) == 0 {
		raw, err := MarshalConfig(config)
		if err != nil {
			return err
		}
		vp.SetConfigType("toml")
		if err := vp.ReadConfig(strings.NewReader(raw)); err != nil {
			return err
		}
	}

	if err := vp.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		StringToTimeDurationHookFunc(),
		func(
			f reflect.Kind,
			t reflect.Kind,
			data any) (any, error) {
			if f != reflect.String || t != reflect.Slice {
				return data, nil
			}

			raw := data.(string)
			if raw == "" {
				return []string{}, nil
			}
			raw = strings.TrimPrefix(raw, ";")
			raw = strings.TrimSuffix(raw, ";")

			return strings.Split(raw, ";"), nil
		},
	))); err != nil {
		return err
	}

	return nil
}

func CheckWritable(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		// dir exists, make sure we can write to it
		testfile := filepath.Join(dir, "test")
		fi, err := os.Create(testfile)
		if err != nil {
			if os.IsPermission(err) {
				return fmt.Errorf("%s is not writeable by the current user", dir)
			}
			return fmt.Errorf("unexpected error while checking writeablility of repo root: %s", err)
		}
		_ = fi.Close()
		return os.Remove(testfile)
	}

	if os.IsNotExist(err) {
		// dir doesn't exist, check that we can create it
		return os.MkdirAll(dir, 0755)
	}

	if os.IsPermission(err) {
		return fmt.Errorf("cannot write to %s, incorrect permissions", err)
	}

	return err
}
