package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/game"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Width     int `schema:"width" json:"width"`
	Height    int `schema:"height" json:"height"`
	MineCount int `schema:"mine_count" json:"mine_count"`
}

// ParseNewGameDTO decodes game params from a query, keeping the fields of
// defaults that the query leaves out.
func ParseNewGameDTO(src map[string][]string, defaults game.Params) (game.Params, error) {
	dto := NewGameDTO(defaults)
	if err := decoder.Decode(&dto, src); err != nil {
		return game.Params{}, err
	}
	params := game.Params(dto)
	return params, params.Validate()
}
