package revenue_vault

import (
	"bytes"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offlineOpts() *bind.TransactOpts {
	return &bind.TransactOpts{
		From:     common.HexToAddress("0x1000000000000000000000000000000000000001"),
		Nonce:    big.NewInt(0),
		GasPrice: big.NewInt(1),
		GasLimit: 100000,
		NoSend:   true,
		Signer: func(_ common.Address, tx *types.Transaction) (*types.Transaction, error) {
			return tx, nil
		},
	}
}

func TestStakeAndClaimCalldata(t *testing.T) {
	vault := common.HexToAddress("0x568BE97b33380a6628a32716205385aDa9F1275b")
	contract, err := NewBindingContract(vault, nil)
	require.Nil(t, err)

	tx, err := contract.Stake(offlineOpts(), big.NewInt(1))
	require.Nil(t, err)
	assert.Equal(t, "0xa694fc3a0000000000000000000000000000000000000000000000000000000000000001", hexutil.Encode(tx.Data()))

	tx, err = contract.ClaimRevenue(offlineOpts())
	require.Nil(t, err)
	assert.Equal(t, "0x564f4f76", hexutil.Encode(tx.Data()))
}

func TestGetStakerOutputs(t *testing.T) {
	parsed, err := BindingContractMetaData.GetAbi()
	require.Nil(t, err)
	method := parsed.Methods["getStaker"]
	assert.Equal(t, "0xa23c44b1", hexutil.Encode(method.ID))

	packed, err := method.Outputs.Pack(big.NewInt(5), big.NewInt(9))
	require.Nil(t, err)
	out, err := parsed.Unpack("getStaker", packed)
	require.Nil(t, err)
	assert.Equal(t, big.NewInt(5), out[0])
	assert.Equal(t, big.NewInt(9), out[1])
}

func TestBindingMatchesABIFile(t *testing.T) {
	raw, err := os.ReadFile("revenue_vault.abi")
	require.Nil(t, err)
	fromFile, err := abi.JSON(bytes.NewReader(raw))
	require.Nil(t, err)
	bound, err := BindingContractMetaData.GetAbi()
	require.Nil(t, err)

	require.Equal(t, len(fromFile.Methods), len(bound.Methods))
	for name, m := range fromFile.Methods {
		assert.Equal(t, m.ID, bound.Methods[name].ID, name)
	}
}
