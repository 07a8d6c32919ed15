package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	out   string
	err   error
	calls int
	data  any
}

func (r *stubRenderer) Render(name string, data any) (string, error) {
	r.calls++
	r.data = data
	if name != CustomerSectionTemplate {
		return "", errors.New("unexpected template")
	}
	return r.out, r.err
}

type stubReferencer struct {
	ids []int64
}

func (r *stubReferencer) Reference(_ context.Context, id int64) any {
	r.ids = append(r.ids, id)
	return id
}

type stubConfig map[string]string

func (c stubConfig) Get(key string) string {
	return c[key]
}

type stubTranslator map[string]string

func (t stubTranslator) Trans(key string) string {
	if msg, ok := t[key]; ok {
		return msg
	}
	return key
}

type listenerFixture struct {
	listener   *CustomerSectionListener
	referencer *stubReferencer
}

func newListenerFixture() *listenerFixture {
	referencer := &stubReferencer{}
	listener := NewCustomerSectionListener(
		NewContextRequestStack(),
		referencer,
		stubConfig{CustomerSectionNameConfigKey: "sections.customers"},
		stubTranslator{"sections.customers": "Commerce Customers"},
	)
	return &listenerFixture{listener: listener, referencer: referencer}
}

func TestCustomerSectionListenerSkips(t *testing.T) {
	t.Log("no current request")
	{
		f := newListenerFixture()
		renderer := &stubRenderer{out: "<div>customer</div>"}
		e := NewBeforeListRenderEvent(renderer)

		require.NoError(t, f.listener.OnView(context.Background(), e))
		require.Empty(t, e.ScrollData.Blocks, "no block must be added")
		require.Zero(t, renderer.calls, "nothing must be rendered")
	}

	t.Log("id is absent in request")
	{
		f := newListenerFixture()
		renderer := &stubRenderer{out: "<div>customer</div>"}
		e := NewBeforeListRenderEvent(renderer)
		ctx := WithRequest(context.Background(), ParamsRequest{"name": "1"})

		require.NoError(t, f.listener.OnView(ctx, e))
		require.Empty(t, e.ScrollData.Blocks, "no block must be added")
		require.Empty(t, f.referencer.ids, "no reference must be created")
	}

	t.Log("id isn't integer")
	{
		for _, raw := range []string{"", "abc", "1.5", "01", "1e3", "0x1A", "99999999999999999999"} {
			f := newListenerFixture()
			renderer := &stubRenderer{out: "<div>customer</div>"}
			e := NewBeforeListRenderEvent(renderer)
			ctx := WithRequest(context.Background(), ParamsRequest{"id": raw})

			require.NoError(t, f.listener.OnView(ctx, e))
			require.Empty(t, e.ScrollData.Blocks, "no block must be added for id %q", raw)
		}
	}

	t.Log("rendered template is blank")
	{
		f := newListenerFixture()
		renderer := &stubRenderer{out: " \n\t \r\n"}
		e := NewBeforeListRenderEvent(renderer)
		ctx := WithRequest(context.Background(), ParamsRequest{"id": "1"})

		require.NoError(t, f.listener.OnView(ctx, e))
		require.Equal(t, 1, renderer.calls, "template must be rendered")
		require.Empty(t, e.ScrollData.Blocks, "no block must be added for blank template")
	}
}

func TestCustomerSectionListenerAddsBlock(t *testing.T) {
	f := newListenerFixture()
	renderer := &stubRenderer{out: "\n<div>customer</div>\n"}
	e := NewBeforeListRenderEvent(renderer)
	ctx := WithRequest(context.Background(), ParamsRequest{"id": " 42 "})

	require.NoError(t, f.listener.OnView(ctx, e))

	require.Equal(t, []int64{42}, f.referencer.ids, "reference must be created for request id")
	require.Equal(t, map[string]any{"Entity": int64(42)}, renderer.data, "reference must be passed as entity")

	require.Len(t, e.ScrollData.Blocks, 1, "exactly one block must be added")
	block := e.ScrollData.Blocks[0]
	require.Equal(t, "Commerce Customers", block.Title, "title must be translated")
	require.Len(t, block.SubBlocks, 1)
	require.Equal(t, []string{"\n<div>customer</div>\n"}, block.SubBlocks[0].Data, "rendered html must be added untrimmed")
}

func TestCustomerSectionListenerRenderError(t *testing.T) {
	f := newListenerFixture()
	renderErr := errors.New("template is broken")
	e := NewBeforeListRenderEvent(&stubRenderer{err: renderErr})
	ctx := WithRequest(context.Background(), ParamsRequest{"id": "1"})

	err := f.listener.OnView(ctx, e)
	require.ErrorIs(t, err, renderErr, "render error must be propagated")
	require.Empty(t, e.ScrollData.Blocks)
}

func TestDispatcher(t *testing.T) {
	f := newListenerFixture()
	renderer := &stubRenderer{out: "<div>customer</div>"}
	d := NewDispatcher(f.listener, f.listener)
	e := NewBeforeListRenderEvent(renderer)
	ctx := WithRequest(context.Background(), ParamsRequest{"id": "7"})

	require.NoError(t, d.Dispatch(ctx, e))
	require.Len(t, e.ScrollData.Blocks, 2, "every listener must be notified")

	failing := NewDispatcher(f.listener, f.listener)
	e = NewBeforeListRenderEvent(&stubRenderer{err: errors.New("boom")})
	require.Error(t, failing.Dispatch(ctx, e))
	require.Equal(t, 1, e.Environment.(*stubRenderer).calls, "dispatch must stop on first error")
}
