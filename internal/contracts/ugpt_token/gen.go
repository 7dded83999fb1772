// Package ugpt_token binds the subset of the UGPT token ABI used for staking.
package ugpt_token

//go:generate go run ../../../cmd/bindgen --abi ugpt_token.abi --pkg ugpt_token --out binding.go
