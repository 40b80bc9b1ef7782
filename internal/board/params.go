package board

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type Params struct {
	Height    int `schema:"height,required"`
	Width     int `schema:"width,required"`
	MineCount int `schema:"mines,required"`
}

// ParseParams decodes game parameters from a query string, e.g.
// "height=8&width=8&mines=8".
func ParseParams(query string) (Params, error) {
	var params Params
	values, err := url.ParseQuery(query)
	if err != nil {
		return params, err
	}
	if err := decoder.Decode(&params, values); err != nil {
		return params, err
	}
	return params, params.Validate()
}

func (p Params) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", p.Height, p.Width)
	}
	if p.MineCount < 0 || p.MineCount > p.Height*p.Width {
		return fmt.Errorf("mine count %d out of range for a %dx%d board",
			p.MineCount, p.Height, p.Width)
	}
	return nil
}
