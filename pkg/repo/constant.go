package repo

const (
	AppName = "UGPTStaking"

	// CfgFileName is the default config name
	CfgFileName = "config.toml"

	// defaultRepoRoot is the path to the default config dir location.
	defaultRepoRoot = "~/.ugpt-staking"

	// rootPathEnvVar is the environment variable used to change the path root.
	rootPathEnvVar = "UGPT_STAKING_PATH"

	envPrefix = "UGPT_STAKING"

	KeystoreDirName = "keystore"

	LogsDirName = "logs"
)

const (
	SepoliaChainID = 11155111

	DefaultRPCURL      = "https://ethereum-sepolia-rpc.publicnode.com"
	DefaultExplorerURL = "https://sepolia.etherscan.io"

	DefaultTokenAddress  = "0xeFE87510E38EC4A46897821fc0f18a11f4DBD02D"
	DefaultVaultAddress  = "0x568BE97b33380a6628a32716205385aDa9F1275b"
	DefaultOracleAddress = "0x980944d3EFA7BD11A43b286fB2b594949bCa240E"

	DefaultTokenSymbol = "UGPT"
)
