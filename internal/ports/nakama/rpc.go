package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"

	"rummy/internal/app"
	"rummy/internal/config"
	"rummy/internal/domain"
	"rummy/internal/meld"
)

// RegisterRPCs registers every client-callable RPC.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcSolveHand, rpcSolveHand); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcCheckMeld, rpcCheckMeld); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcSimulate, rpcSimulate)
}

// SolveHandRequest is the rummy_solve_hand payload.
type SolveHandRequest struct {
	Hand      string `json:"hand"`
	ExtraCard bool   `json:"extra_card"`
	Scorer    string `json:"scorer"`
	WildFace  string `json:"wild_face"`
}

// CheckMeldRequest is the rummy_check_meld payload.
type CheckMeldRequest struct {
	Type     string `json:"type"`
	Cards    string `json:"cards"`
	WildFace string `json:"wild_face"`
}

// SimulateRequest is the rummy_simulate payload.
type SimulateRequest struct {
	Games int   `json:"games"`
	Seed  int64 `json:"seed"`
}

// rpcSolveHand tokenizes and solves a hand written in card notation.
// Payload: {"hand": "2H 3H jk ...", "extra_card": false, "scorer": "stateful", "wild_face": "7"}
func rpcSolveHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req SolveHandRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if strings.TrimSpace(req.Hand) == "" {
		return "", runtime.NewError("Hand required", codeInvalidArgument)
	}

	hand, err := domain.ParseHand(req.Hand)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	cfg := config.GetGameConfig()
	opts := cfg.SolverOptions()
	opts.ExtraCard = req.ExtraCard
	if req.Scorer != "" {
		opts.Scorer = meld.ScorerKind(req.Scorer)
		if _, err := meld.NewScorer(opts.Scorer); err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
	}
	if req.WildFace != "" {
		if opts.WildFace, err = domain.ParseFace(req.WildFace); err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
	}

	if d := cfg.SolveTimeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	sol, err := meld.Resolve(ctx, hand, opts)
	switch {
	case errors.Is(err, meld.ErrTooManyCards):
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("rpcSolveHand: deadline hit after %d nodes, returning best so far", sol.Explored)
	case err != nil:
		logger.Error("rpcSolveHand: solve failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	out, err := marshalStruct(solutionToMap(sol))
	if err != nil {
		logger.Error("rpcSolveHand: encode failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}

// rpcCheckMeld validates one declared meld. An illegal meld is a normal
// response with valid=false and the reason.
// Payload: {"type": "RUMMY", "cards": "9C jk JC", "wild_face": ""}
func rpcCheckMeld(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req CheckMeldRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	typ, err := meld.ParsePartType(req.Type)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	cards, err := domain.ParseHand(req.Cards)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	wild := domain.NoFace
	if req.WildFace != "" {
		if wild, err = domain.ParseFace(req.WildFace); err != nil {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
	}

	res := map[string]interface{}{"type": typ.String(), "valid": true, "reason": ""}
	if p, err := meld.NewWildPart(typ, cards, wild); err != nil {
		res["valid"] = false
		res["reason"] = err.Error()
	} else {
		res["cards"] = cardsToList(p.Cards())
	}

	out, err := marshalStruct(res)
	if err != nil {
		logger.Error("rpcCheckMeld: encode failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}

// rpcSimulate plays bot rounds with the loaded configuration.
// Payload: {"games": 10, "seed": 42}
func rpcSimulate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	req := SimulateRequest{Games: 1}
	if strings.TrimSpace(payload) != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}
	if req.Games <= 0 || req.Games > MaxSimulatedGames {
		return "", runtime.NewError("games must be between 1 and 100", codeInvalidArgument)
	}

	res, err := app.Simulate(ctx, config.GetGameConfig(), req.Games, req.Seed)
	if err != nil {
		logger.Error("rpcSimulate: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	out, err := marshalStruct(batchToMap(res))
	if err != nil {
		logger.Error("rpcSimulate: encode failed: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return out, nil
}
