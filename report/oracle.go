package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/quay/pkgaudit"
	"github.com/quay/pkgaudit/lockfile"
)

// RegistryOracle is a [YankOracle] backed by a package registry's yank
// status endpoint. One request is issued per distinct package name;
// requests run concurrently, bounded by Concurrency.
type RegistryOracle struct {
	// Client issues the underlying HTTP requests. If nil, http.DefaultClient
	// is used.
	Client *http.Client
	// BaseURL is the registry endpoint; package names are appended as path
	// segments, e.g. BaseURL + "/" + name + "/yanked".
	BaseURL string
	// Concurrency bounds the number of in-flight requests. Zero means 8.
	Concurrency int
}

// FindYanked implements [YankOracle]. It queries the registry once per
// distinct package name present in packages and returns every
// (name, version) pair the registry reports as yanked.
func (o *RegistryOracle) FindYanked(ctx context.Context, packages []lockfile.Package) ([]lockfile.Package, error) {
	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	limit := o.Concurrency
	if limit <= 0 {
		limit = 8
	}

	byName := make(map[string][]lockfile.Package)
	for _, p := range packages {
		byName[p.Name] = append(byName[p.Name], p)
	}

	var (
		mu     sync.Mutex
		yanked []lockfile.Package
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for name, pkgs := range byName {
		name, pkgs := name, pkgs
		g.Go(func() error {
			versions, err := o.yankedVersions(ctx, client, name)
			if err != nil {
				return &pkgaudit.Error{Kind: pkgaudit.ErrRegistry, Op: "report.RegistryOracle.FindYanked", Message: name, Inner: err}
			}
			if len(versions) == 0 {
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, p := range pkgs {
				if versions[p.Version.String()] {
					yanked = append(yanked, p)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return yanked, nil
}

func (o *RegistryOracle) yankedVersions(ctx context.Context, client *http.Client, name string) (map[string]bool, error) {
	url := fmt.Sprintf("%s/%s/yanked", o.BaseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s from registry", resp.Status)
	}
	var versions []string
	if err := json.NewDecoder(resp.Body).Decode(&versions); err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(versions))
	for _, v := range versions {
		out[v] = true
	}
	return out, nil
}
