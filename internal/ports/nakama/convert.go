package nakama

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"rummy/internal/app"
	"rummy/internal/domain"
	"rummy/internal/meld"
)

func cardsToList(cards []domain.Card) []interface{} {
	out := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func solutionToMap(sol meld.Solution) map[string]interface{} {
	parts := make([]interface{}, 0, len(sol.Parts))
	for _, p := range sol.Parts {
		parts = append(parts, map[string]interface{}{
			"type":  p.Type().String(),
			"cards": cardsToList(p.Cards()),
		})
	}
	return map[string]interface{}{
		"found":      sol.Found(),
		"parts":      parts,
		"score":      sol.Score,
		"free_cards": cardsToList(sol.FreeCards),
		"winning":    sol.Winning,
		"points":     sol.Points,
		"explored":   sol.Explored,
	}
}

func batchToMap(res app.BatchResult) map[string]interface{} {
	wins := make(map[string]interface{}, len(res.Wins))
	for id, n := range res.Wins {
		wins[id] = n
	}
	leaders := make([]interface{}, 0, len(res.Wins))
	for _, id := range res.Leaders() {
		leaders = append(leaders, id)
	}
	return map[string]interface{}{
		"games":         res.Games,
		"wins":          wins,
		"leaders":       leaders,
		"unfinished":    res.Unfinished,
		"average_turns": res.AverageTurns(),
	}
}

// marshalStruct renders m as JSON through structpb, so numbers always
// encode as JSON numbers.
func marshalStruct(m map[string]interface{}) (string, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
