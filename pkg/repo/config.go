package repo

import (
	"reflect"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

type Duration time.Duration

func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	x, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(x)
	return nil
}

func StringToTimeDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(
		f reflect.Type,
		t reflect.Type,
		data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(Duration(5)) {
			return data, nil
		}

		d, err := time.ParseDuration(data.(string))
		if err != nil {
			return nil, err
		}
		return Duration(d), nil
	}
}

func (d *Duration) ToDuration() time.Duration {
	return time.Duration(*d)
}

func (d *Duration) String() string {
	return time.Duration(*d).String()
}

type Config struct {
	RPC       RPC       `mapstructure:"rpc" toml:"rpc"`
	Contracts Contracts `mapstructure:"contracts" toml:"contracts"`
	Tx        Tx        `mapstructure:"tx" toml:"tx"`
	Wallet    Wallet    `mapstructure:"wallet" toml:"wallet"`
	Display   Display   `mapstructure:"display" toml:"display"`
	Monitor   Monitor   `mapstructure:"monitor" toml:"monitor"`
	Log       Log       `mapstructure:"log" toml:"log"`
}

type RPC struct {
	URL               string   `mapstructure:"url" toml:"url"`
	ChainID           uint64   `mapstructure:"chain_id" toml:"chain_id"`
	DialRetry         uint     `mapstructure:"dial_retry" toml:"dial_retry"`
	DialRetryInterval Duration `mapstructure:"dial_retry_interval" toml:"dial_retry_interval"`
}

type Contracts struct {
	Token       string `mapstructure:"token" toml:"token"`
	Vault       string `mapstructure:"vault" toml:"vault"`
	Oracle      string `mapstructure:"oracle" toml:"oracle"`
	ExplorerURL string `mapstructure:"explorer_url" toml:"explorer_url"`
}

func (c *Contracts) TokenAddress() ethcommon.Address {
	return ethcommon.HexToAddress(c.Token)
}

func (c *Contracts) VaultAddress() ethcommon.Address {
	return ethcommon.HexToAddress(c.Vault)
}

func (c *Contracts) OracleAddress() ethcommon.Address {
	return ethcommon.HexToAddress(c.Oracle)
}

type Tx struct {
	ConfirmTimeout Duration `mapstructure:"confirm_timeout" toml:"confirm_timeout"`
	PollInterval   Duration `mapstructure:"poll_interval" toml:"poll_interval"`
}

type Wallet struct {
	// keystore file, relative paths are resolved against the repo root
	Keystore string `mapstructure:"keystore" toml:"keystore"`
}

type Display struct {
	Symbol          string   `mapstructure:"symbol" toml:"symbol"`
	Precision       int      `mapstructure:"precision" toml:"precision"`
	RefreshInterval Duration `mapstructure:"refresh_interval" toml:"refresh_interval"`
}

type Monitor struct {
	Enable bool   `mapstructure:"enable" toml:"enable"`
	Listen string `mapstructure:"listen" toml:"listen"`
}

type Log struct {
	Level        string `mapstructure:"level" toml:"level"`
	Filename     string `mapstructure:"filename" toml:"filename"`
	ReportCaller bool   `mapstructure:"report_caller" toml:"report_caller"`
	EnableColor  bool   `mapstructure:"enable_color" toml:"enable_color"`

	// unit: day
	MaxAge uint `mapstructure:"max_age" toml:"max_age"`

	RotationTime Duration  `mapstructure:"rotation_time" toml:"rotation_time"`
	Module       LogModule `mapstructure:"module" toml:"module"`
}

type LogModule struct {
	Bridge string `mapstructure:"bridge" toml:"bridge"`
	Wallet string `mapstructure:"wallet" toml:"wallet"`
	RPC    string `mapstructure:"rpc" toml:"rpc"`
}

func DefaultConfig() *Config {
	return &Config{
		RPC: RPC{
			URL:               DefaultRPCURL,
			ChainID:           SepoliaChainID,
			DialRetry:         3,
			DialRetryInterval: Duration(2 * time.Second),
		},
		Contracts: Contracts{
			Token:       DefaultTokenAddress,
			Vault:       DefaultVaultAddress,
			Oracle:      DefaultOracleAddress,
			ExplorerURL: DefaultExplorerURL,
		},
		Tx: Tx{
			ConfirmTimeout: Duration(3 * time.Minute),
			PollInterval:   Duration(1 * time.Second),
		},
		Wallet: Wallet{
			Keystore: "",
		},
		Display: Display{
			Symbol:          DefaultTokenSymbol,
			Precision:       2,
			RefreshInterval: Duration(12 * time.Second),
		},
		Monitor: Monitor{
			Enable: false,
			Listen: "127.0.0.1:40011",
		},
		Log: Log{
			Level:        "info",
			Filename:     "ugpt-staking",
			ReportCaller: false,
			EnableColor:  true,
			MaxAge:       30,
			RotationTime: Duration(24 * time.Hour),
			Module: LogModule{
				Bridge: "info",
				Wallet: "info",
				RPC:    "warn",
			},
		},
	}
}

// Check validates the parts of the config every command depends on.
func (c *Config) Check() error {
	if c.RPC.URL == "" {
		return errors.New("rpc.url is empty")
	}
	for name, addr := range map[string]string{
		"contracts.token":  c.Contracts.Token,
		"contracts.vault":  c.Contracts.Vault,
		"contracts.oracle": c.Contracts.Oracle,
	} {
		if !ethcommon.IsHexAddress(addr) {
			return errors.Errorf("%s is not a valid address: %q", name, addr)
		}
	}
	if c.Tx.PollInterval.ToDuration() <= 0 {
		return errors.New("tx.poll_interval must be positive")
	}
	if c.Tx.ConfirmTimeout.ToDuration() < c.Tx.PollInterval.ToDuration() {
		return errors.New("tx.confirm_timeout must not be shorter than tx.poll_interval")
	}
	if c.Display.Precision < 0 {
		return errors.New("display.precision must not be negative")
	}
	return nil
}
