package bridge

import (
	"context"

	"github.com/Rican7/retry"
	"github.com/Rican7/retry/strategy"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ugpt-protocol/ugpt-staking/pkg/repo"
)

var ErrChainIDMismatch = errors.New("chain id mismatch")

// Dial connects to the configured endpoint and checks that it serves the
// configured chain. Connection failures are retried, a chain mismatch is not.
func Dial(ctx context.Context, cfg repo.RPC, logger logrus.FieldLogger) (*ethclient.Client, error) {
	var (
		client   *ethclient.Client
		mismatch error
	)
	attempts := cfg.DialRetry
	if attempts == 0 {
		attempts = 1
	}
	if err := retry.Retry(func(attempt uint) error {
		c, err := ethclient.DialContext(ctx, cfg.URL)
		if err != nil {
			logger.WithFields(logrus.Fields{"url": cfg.URL, "attempt": attempt, "err": err}).Warn("Dial rpc failed")
			return err
		}
		chainID, err := c.ChainID(ctx)
		if err != nil {
			c.Close()
			logger.WithFields(logrus.Fields{"url": cfg.URL, "attempt": attempt, "err": err}).Warn("Get chain id failed")
			return err
		}
		if cfg.ChainID != 0 && chainID.Uint64() != cfg.ChainID {
			c.Close()
			mismatch = errors.Wrapf(ErrChainIDMismatch, "expect %d, got %s", cfg.ChainID, chainID)
			return nil
		}
		client = c
		return nil
	}, strategy.Limit(attempts), strategy.Wait(cfg.DialRetryInterval.ToDuration())); err != nil {
		return nil, errors.Wrapf(err, "dial %s failed", cfg.URL)
	}
	if mismatch != nil {
		return nil, mismatch
	}
	logger.WithField("url", cfg.URL).Info("Rpc connected")
	return client, nil
}
