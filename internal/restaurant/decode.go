package restaurant

import (
	"encoding/json"
	"fmt"
)

// DecodeList parses a list response body. A body that is not JSON, reports an
// API error, or carries no restaurants collection yields ErrParse, so callers
// never see a partially parsed list.
func DecodeList(body []byte) ([]Restaurant, error) {
	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding restaurant list: %v", ErrParse, err)
	}
	if resp.Error {
		return nil, fmt.Errorf("%w: api reported error: %s", ErrParse, resp.Message)
	}
	if resp.Restaurants == nil {
		return nil, fmt.Errorf("%w: restaurant list missing", ErrParse)
	}
	return *resp.Restaurants, nil
}

// DecodeDetail parses a detail response body.
func DecodeDetail(body []byte) (*Detail, error) {
	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding restaurant detail: %v", ErrParse, err)
	}
	if resp.Error {
		return nil, fmt.Errorf("%w: api reported error: %s", ErrParse, resp.Message)
	}
	if resp.Restaurant == nil || resp.Restaurant.ID == "" {
		return nil, fmt.Errorf("%w: restaurant detail missing", ErrParse)
	}
	return resp.Restaurant, nil
}
