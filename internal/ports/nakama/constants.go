package nakama

const (
	// RpcSolveHand decomposes a hand and returns the best cover.
	RpcSolveHand = "rummy_solve_hand"

	// RpcCheckMeld reports whether a declared group is a legal meld.
	RpcCheckMeld = "rummy_check_meld"

	// RpcSimulate plays a batch of bot rounds and returns win counts.
	RpcSimulate = "rummy_simulate"

	// GameConfigEnvKey names the runtime env entry holding the config path.
	GameConfigEnvKey = "rummy_config_path"

	// DefaultGameConfigPath is read when the env entry is absent.
	DefaultGameConfigPath = "data/rummy_config.json"

	// MaxSimulatedGames caps one rummy_simulate call.
	MaxSimulatedGames = 100
)

// gRPC status codes used with runtime.NewError.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
