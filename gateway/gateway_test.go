package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vojniknikola-ui/strojopromet-api/models"
)

var errTierDown = errors.New("tier down")

type fakeBlob struct {
	data map[string][]byte
	fail bool
	puts int
}

func newFakeBlob() *fakeBlob {
	return &fakeBlob{data: map[string][]byte{}}
}

func (b *fakeBlob) Exists(ctx context.Context, name string) (bool, error) {
	if b.fail {
		return false, errTierDown
	}
	_, ok := b.data[name]
	return ok, nil
}

func (b *fakeBlob) Fetch(ctx context.Context, name string) ([]byte, error) {
	if b.fail {
		return nil, errTierDown
	}
	data, ok := b.data[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (b *fakeBlob) Put(ctx context.Context, name string, data []byte) error {
	if b.fail {
		return errTierDown
	}
	b.puts++
	b.data[name] = data
	return nil
}

func (b *fakeBlob) Delete(ctx context.Context, name string) error {
	if b.fail {
		return errTierDown
	}
	delete(b.data, name)
	return nil
}

type fakeTable struct {
	rows    map[string][]byte
	fail    bool
	upserts int
}

func newFakeTable() *fakeTable {
	return &fakeTable{rows: map[string][]byte{}}
}

func (t *fakeTable) Load(ctx context.Context, key string) ([]byte, error) {
	if t.fail {
		return nil, errTierDown
	}
	data, ok := t.rows[key]
	if !ok {
		return nil, errors.New("record not found")
	}
	return data, nil
}

func (t *fakeTable) Upsert(ctx context.Context, key string, payload []byte) error {
	if t.fail {
		return errTierDown
	}
	t.upserts++
	t.rows[key] = payload
	return nil
}

func (t *fakeTable) Delete(ctx context.Context, key string) error {
	if t.fail {
		return errTierDown
	}
	delete(t.rows, key)
	return nil
}

func testLines() []models.CartLine {
	return []models.CartLine{
		{PartID: 1, Name: "Filter ulja", CatalogNumber: "X1", PriceInclVAT: 45.50, Quantity: 2},
	}
}

func TestCartKey(t *testing.T) {
	require.Equal(t, "cart-abc123.json", CartKey("abc123"))
}

func TestNewCartID_Opaque(t *testing.T) {
	a := NewCartID()
	b := NewCartID()
	require.NotEqual(t, a, b)
	require.True(t, strings.Contains(a, "-"))
}

func TestWrite_PrefersBlobTier(t *testing.T) {
	blob := newFakeBlob()
	table := newFakeTable()
	gw := NewGateway(blob, table)

	gw.Write(context.Background(), "id1", testLines())

	require.Equal(t, 1, blob.puts)
	require.Equal(t, 0, table.upserts)
	require.Equal(t, testLines(), gw.Read(context.Background(), "id1"))
}

func TestWrite_FallsBackToRelational(t *testing.T) {
	blob := newFakeBlob()
	blob.fail = true
	table := newFakeTable()
	gw := NewGateway(blob, table)

	gw.Write(context.Background(), "id1", testLines())

	require.Equal(t, 1, table.upserts)
	require.Equal(t, testLines(), gw.Read(context.Background(), "id1"))
}

func TestWrite_BothTiersDownDoesNotPanic(t *testing.T) {
	blob := newFakeBlob()
	blob.fail = true
	table := newFakeTable()
	table.fail = true
	gw := NewGateway(blob, table)

	require.NotPanics(t, func() {
		gw.Write(context.Background(), "id1", testLines())
	})
}

func TestWrite_NilTiersDoesNotPanic(t *testing.T) {
	gw := NewGateway(nil, nil)
	require.NotPanics(t, func() {
		gw.Write(context.Background(), "id1", testLines())
		gw.Delete(context.Background(), "id1")
	})
	require.Empty(t, gw.Read(context.Background(), "id1"))
}

func TestRead_FallsThroughToEmpty(t *testing.T) {
	blob := newFakeBlob()
	blob.fail = true
	table := newFakeTable()
	table.fail = true
	gw := NewGateway(blob, table)

	lines := gw.Read(context.Background(), "missing")
	require.NotNil(t, lines)
	require.Empty(t, lines)
}

func TestRead_RelationalWhenBlobMisses(t *testing.T) {
	blob := newFakeBlob()
	table := newFakeTable()
	payload, err := json.Marshal(testLines())
	require.NoError(t, err)
	table.rows[CartKey("id1")] = payload

	gw := NewGateway(blob, table)
	require.Equal(t, testLines(), gw.Read(context.Background(), "id1"))
}

func TestRead_CorruptBlobFallsBack(t *testing.T) {
	blob := newFakeBlob()
	blob.data[CartKey("id1")] = []byte("{not json")
	table := newFakeTable()
	payload, err := json.Marshal(testLines())
	require.NoError(t, err)
	table.rows[CartKey("id1")] = payload

	gw := NewGateway(blob, table)
	require.Equal(t, testLines(), gw.Read(context.Background(), "id1"))
}

func TestDelete_BestEffortBothTiers(t *testing.T) {
	blob := newFakeBlob()
	table := newFakeTable()
	gw := NewGateway(blob, table)

	payload, err := json.Marshal(testLines())
	require.NoError(t, err)
	blob.data[CartKey("id1")] = payload
	table.rows[CartKey("id1")] = payload

	gw.Delete(context.Background(), "id1")

	require.Empty(t, blob.data)
	require.Empty(t, table.rows)
	require.Empty(t, gw.Read(context.Background(), "id1"))
}

func TestClient_BindsCartID(t *testing.T) {
	blob := newFakeBlob()
	gw := NewGateway(blob, newFakeTable())
	client := NewClient(gw, "id1")

	require.NoError(t, client.Save(context.Background(), testLines()))
	lines, err := client.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, testLines(), lines)

	require.NoError(t, client.Delete(context.Background()))
	lines, err = client.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, lines)
}
