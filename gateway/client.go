package gateway

import (
	"context"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// Client binds a Gateway to one cart identifier so it satisfies the cart
// store's RemoteClient seam.
type Client struct {
	gw     *Gateway
	cartID string
}

func NewClient(gw *Gateway, cartID string) *Client {
	return &Client{gw: gw, cartID: cartID}
}

func (c *Client) Load(ctx context.Context) ([]models.CartLine, error) {
	return c.gw.Read(ctx, c.cartID), nil
}

func (c *Client) Save(ctx context.Context, lines []models.CartLine) error {
	c.gw.Write(ctx, c.cartID, lines)
	return nil
}

func (c *Client) Delete(ctx context.Context) error {
	c.gw.Delete(ctx, c.cartID)
	return nil
}
