package api

import (
	"context"
	"net/http"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

// MyMembership returns the current user's membership. The server creates a
// free membership on first access.
func (c *Client) MyMembership(ctx context.Context) (*model.Membership, error) {
	var membership model.Membership
	err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/membership/me",
	}, &membership)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// RedeemCode redeems a membership code and returns the updated membership.
func (c *Client) RedeemCode(ctx context.Context, code string) (*model.Membership, error) {
	var membership model.Membership
	err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/membership/redeem",
		body:   model.RedeemRequest{Code: code},
	}, &membership)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
