// Package cluster maps source file paths to coarse semantic groups
// (frontend/backend/shared/unknown) used for visual grouping and as
// attraction targets in the force layout.
//
// Classification is heuristic and path-based: directory segments and
// file extensions decide the group. The rules are ordered; the first
// match wins. The one subtlety is the /api/ override: Next.js-style
// app-directory API routes live under paths that also look like frontend
// code (src/app/api/...), so /api/ is checked before any frontend rule.
package cluster

import (
	"strings"

	"github.com/codemapio/codemap/pkg/graph"
)

var frontendDirs = []string{
	"/components/", "/pages/", "/hooks/", "/ui/", "/views/",
}

var frontendExts = []string{
	".tsx", ".jsx", ".vue", ".svelte", ".css", ".scss", ".html",
}

var backendDirs = []string{
	"/api/", "/server/", "/services/", "/controllers/", "/routes/",
	"/middleware/", "/db/", "/database/",
}

var sharedDirs = []string{
	"/types/", "/schemas/", "/constants/", "/utils/", "/lib/",
	"/shared/", "/common/",
}

// Classify maps a file path to its cluster. It is pure, deterministic
// and case-insensitive; unmatched paths always yield ClusterUnknown,
// never an error.
func Classify(filePath string) graph.ClusterType {
	p := strings.ToLower(filePath)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	// API routes win over frontend-looking paths (e.g. src/app/api/x/route.ts).
	if strings.Contains(p, "/api/") {
		return graph.ClusterBackend
	}

	for _, dir := range frontendDirs {
		if strings.Contains(p, dir) {
			return graph.ClusterFrontend
		}
	}
	for _, ext := range frontendExts {
		if strings.HasSuffix(p, ext) {
			return graph.ClusterFrontend
		}
	}
	if strings.Contains(p, "/app/") {
		return graph.ClusterFrontend
	}

	for _, dir := range backendDirs {
		if strings.Contains(p, dir) {
			return graph.ClusterBackend
		}
	}

	for _, dir := range sharedDirs {
		if strings.Contains(p, dir) {
			return graph.ClusterShared
		}
	}

	return graph.ClusterUnknown
}

// Assign classifies every node in the slice and fills in Data.Cluster,
// returning the same slice for chaining. Nodes with a cluster already
// set are reclassified; the file path is the source of truth.
func Assign(nodes []graph.Node) []graph.Node {
	for i := range nodes {
		nodes[i].Data.Cluster = Classify(nodes[i].Data.FilePath)
	}
	return nodes
}
