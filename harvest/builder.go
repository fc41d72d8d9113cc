package harvest

import (
	"context"
	"log/slog"
)

// Stats summarizes one completed harvest.
type Stats struct {
	Fetches  int64
	Broad    int
	Narrow   int
	Detailed int
}

// Builder reconstructs the taxonomy tree by recursive descent over the
// broader/narrower relations, one fetch per node. The traversal is strictly
// sequential; any fetch or property error aborts the build and no partial
// tree is returned.
type Builder struct {
	client *Client
	scheme string
	logger *slog.Logger
	stats  Stats
}

// NewBuilder creates a Builder harvesting the given concept scheme URI.
func NewBuilder(client *Client, scheme string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{client: client, scheme: scheme, logger: logger}
}

// Build performs the full four-level harvest and assembles the tree.
func (b *Builder) Build(ctx context.Context) (*Tree, error) {
	schemeConcept, err := b.client.Fetch(ctx, b.scheme)
	if err != nil {
		return nil, err
	}
	topURI, err := schemeConcept.HasTopConcept()
	if err != nil {
		return nil, err
	}

	top, err := b.client.Fetch(ctx, topURI)
	if err != nil {
		return nil, err
	}

	tree := &Tree{
		Labels: top.Labels(),
		Broad:  make(map[string]*BroadNode),
	}

	for _, broadURI := range top.TopConceptsOf(b.scheme) {
		code, node, err := b.buildBroad(ctx, broadURI)
		if err != nil {
			return nil, err
		}
		tree.Broad[code] = node
	}

	b.stats.Fetches = b.client.Fetches()
	b.logger.Info("Harvest complete",
		slog.Int64("fetches", b.stats.Fetches),
		slog.Int("broad", b.stats.Broad),
		slog.Int("narrow", b.stats.Narrow),
		slog.Int("detailed", b.stats.Detailed))
	return tree, nil
}

// Stats returns the counters of the last completed Build.
func (b *Builder) Stats() Stats {
	return b.stats
}

func (b *Builder) buildBroad(ctx context.Context, uri string) (string, *BroadNode, error) {
	concept, err := b.client.Fetch(ctx, uri)
	if err != nil {
		return "", nil, err
	}
	code, err := concept.Notation()
	if err != nil {
		return "", nil, err
	}

	node := &BroadNode{
		Labels: concept.Labels(),
		Narrow: make(map[string]*NarrowNode),
	}
	for _, narrowURI := range concept.NarrowerOf(uri) {
		narrowCode, narrow, err := b.buildNarrow(ctx, narrowURI)
		if err != nil {
			return "", nil, err
		}
		node.Narrow[narrowCode] = narrow
	}

	b.stats.Broad++
	b.logger.Debug("Assembled broad field", slog.String("code", code), slog.Int("narrow", len(node.Narrow)))
	return code, node, nil
}

func (b *Builder) buildNarrow(ctx context.Context, uri string) (string, *NarrowNode, error) {
	concept, err := b.client.Fetch(ctx, uri)
	if err != nil {
		return "", nil, err
	}
	code, err := concept.Notation()
	if err != nil {
		return "", nil, err
	}

	node := &NarrowNode{
		Labels:   concept.Labels(),
		Detailed: make(map[string]*DetailedNode),
	}
	for _, detailedURI := range concept.NarrowerOf(uri) {
		// The narrow concept reasserts itself as its own broader target at
		// this level; it must not be harvested as its own child.
		if detailedURI == uri {
			continue
		}
		detailedCode, detailed, err := b.buildDetailed(ctx, detailedURI)
		if err != nil {
			return "", nil, err
		}
		node.Detailed[detailedCode] = detailed
	}

	b.stats.Narrow++
	return code, node, nil
}

func (b *Builder) buildDetailed(ctx context.Context, uri string) (string, *DetailedNode, error) {
	concept, err := b.client.Fetch(ctx, uri)
	if err != nil {
		return "", nil, err
	}
	code, err := concept.Notation()
	if err != nil {
		return "", nil, err
	}

	b.stats.Detailed++
	return code, &DetailedNode{Labels: concept.Labels()}, nil
}
