// Package loader runs the end-to-end NeST subnetwork load: fetch the
// hierarchy, load the score table, then derive and publish one assembly
// network per qualifying hierarchy node.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"nestloader/internal/assembly"
	"nestloader/internal/config"
	"nestloader/internal/cx2"
	"nestloader/internal/ndex"
	"nestloader/internal/scores"
)

type Loader struct {
	opts    config.Options
	server  string
	version string
	svc     ndex.Service
}

// New wires a loader. server is the credentials-file hostname (used only to
// build viewer URLs); svc is the authenticated NDEx client.
func New(opts config.Options, server, version string, svc ndex.Service) *Loader {
	return &Loader{opts: opts, server: server, version: version, svc: svc}
}

// Run performs one sequential load. Every error aborts the run; nothing
// already uploaded is rolled back.
func (l *Loader) Run(ctx context.Context) error {
	style, err := l.style()
	if err != nil {
		return err
	}

	log.Printf("fetching hierarchy %s", l.opts.Hierarchy)
	hierarchy, err := l.svc.GetNetwork(ctx, l.opts.Hierarchy)
	if err != nil {
		return fmt.Errorf("fetch hierarchy: %w", err)
	}

	table, err := l.loadScores(ctx)
	if err != nil {
		return err
	}

	index, err := l.existingNetworks(ctx)
	if err != nil {
		return err
	}

	links := assembly.Links{
		CCMI:         l.opts.CCMILink,
		HiView:       l.opts.HiViewLink,
		ToolVersion:  l.version,
		HierarchyURL: assembly.NetworkURL(l.server, l.opts.Hierarchy),
	}

	for _, id := range hierarchy.NodeIDs() {
		node := hierarchy.Nodes[id]
		rawName, genes, ok := assembly.NameAndGenes(node)
		if !ok {
			l.debugf("skipping node %d: no annotation or gene list", id)
			continue
		}
		name := assembly.NormalizeName(rawName)
		if assembly.IsUnnamed(name) {
			log.Printf("skipping node %d: lacks a name", id)
			continue
		}
		if len(genes) > l.opts.MaxSize {
			log.Printf("skipping %s: %d genes exceeds maxsize cutoff of %d",
				name, len(genes), l.opts.MaxSize)
			continue
		}

		sub := assembly.Build(genes, table)
		assembly.NodeAttributes(node, sub.Attributes)
		assembly.ApplyMetadata(sub.Attributes, name, links)
		sub.VisualProperties = style

		if err := l.publish(ctx, name, sub, index); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) style() (json.RawMessage, error) {
	if l.opts.StylePath != "" {
		return assembly.StyleFromFile(l.opts.StylePath)
	}
	return assembly.DefaultStyle()
}

// loadScores resolves the score source to a local file and parses it. A run
// without --tempdir downloads into a fresh directory that is removed again
// whether or not the load succeeds.
func (l *Loader) loadScores(ctx context.Context) (scores.Table, error) {
	dir := l.opts.TempDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "nestloader")
		if err != nil {
			return nil, fmt.Errorf("create temp dir: %w", err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	} else if err := scores.EnsureDir(dir); err != nil {
		return nil, err
	}
	table, err := scores.Load(ctx, l.opts.IASScore, dir)
	if err != nil {
		return nil, fmt.Errorf("load score table: %w", err)
	}
	l.debugf("score table indexes %d proteins", len(table))
	return table, nil
}

// existingNetworks maps network name to id over the user's networks so a
// name collision later resolves to an update instead of a duplicate create.
// With --name_prefix set, only names carrying the prefix join the index.
func (l *Loader) existingNetworks(ctx context.Context) (map[string]string, error) {
	summaries, err := l.svc.UserNetworkSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user networks: %w", err)
	}
	index := map[string]string{}
	for _, s := range summaries {
		if l.opts.NamePrefix != "" && !strings.HasPrefix(s.Name, l.opts.NamePrefix) {
			continue
		}
		index[s.Name] = s.ExternalID
	}
	l.debugf("existing-network index holds %d names", len(index))
	return index, nil
}

// publish decides create-vs-update by name. Dry-run gates the remote call
// only; everything before this point ran exactly as in a real run. A created
// network joins the index so a duplicate name later in the run updates.
func (l *Loader) publish(ctx context.Context, name string, sub *cx2.Network, index map[string]string) error {
	if id, ok := index[name]; ok {
		if l.opts.DryRun {
			log.Printf("dryrun: would update %s (%s)", name, id)
			return nil
		}
		log.Printf("updating %s (%s)", name, id)
		if err := l.svc.UpdateNetwork(ctx, id, sub); err != nil {
			return fmt.Errorf("update %s: %w", name, err)
		}
		return nil
	}
	if l.opts.DryRun {
		log.Printf("dryrun: would create %s with visibility %s", name, l.opts.Visibility)
		return nil
	}
	log.Printf("creating %s with visibility %s", name, l.opts.Visibility)
	id, err := l.svc.CreateNetwork(ctx, sub, l.opts.Visibility)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	index[name] = id
	return nil
}

func (l *Loader) debugf(format string, args ...any) {
	if l.opts.Verbose > 1 {
		log.Printf(format, args...)
	}
}
