// Package revenue_vault binds the revenue vault staking ABI.
package revenue_vault

//go:generate go run ../../../cmd/bindgen --abi revenue_vault.abi --pkg revenue_vault --out binding.go
