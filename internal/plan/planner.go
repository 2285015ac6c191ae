// Package plan derives the deterministic generation plan: the ordered list of
// file descriptors produced before any filesystem I/O. The plan for a given
// (seed, count, depth) is identical across runs and concurrency settings.
package plan

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/Joe-Costa/ClusterPopulator/internal/catalog"
	"github.com/Joe-Costa/ClusterPopulator/internal/naming"
	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

// Bounds on the request surface. Rejections happen before any side effect.
const (
	MinCount = 1
	MaxCount = 10000
	MinDepth = 1
	MaxDepth = 3
)

// ErrArgument marks rejected run parameters.
var ErrArgument = errors.New("invalid argument")

// PlannedFile describes one file to create. Seq is the stable total order and
// the key for re-deriving the file's random streams.
type PlannedFile struct {
	Seq        int
	Department string
	Subfolder  string
	Year       string // set only at depth 3
	Dir        string // relative directory under the output root
	Name       string // sanitized, collision-free file name
	Ext        string
	Kind       string
}

// RelPath returns the file's path relative to the output root.
func (f PlannedFile) RelPath() string {
	return filepath.Join(f.Dir, f.Name)
}

// Plan is the ordered set of planned files for one run.
type Plan struct {
	Seed  int64
	Depth int
	Files []PlannedFile
}

// Directories returns the sorted unique set of relative directories the plan
// requires, shallowest first so parents precede children.
func (p *Plan) Directories() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range p.Files {
		for d := f.Dir; d != "" && d != "."; d = filepath.Dir(d) {
			if d == string(filepath.Separator) {
				break
			}
			if !seen[d] {
				seen[d] = true
				dirs = append(dirs, d)
			}
		}
	}
	sort.Strings(dirs)
	return dirs
}

// Planner assigns each requested file to a (department, subfolder, year,
// name) slot using per-index derived streams.
type Planner struct {
	src     *rng.Source
	profile naming.Profile
	gen     *naming.Generator
}

// NewPlanner returns a planner over the given source and naming profile.
func NewPlanner(src *rng.Source, profile naming.Profile) *Planner {
	return &Planner{
		src:     src,
		profile: profile,
		gen:     naming.NewGenerator(profile),
	}
}

// ValidateShape checks count and depth against the request bounds.
func ValidateShape(count, depth int) error {
	if count < MinCount || count > MaxCount {
		return fmt.Errorf("%w: count must be between %d and %d, got %d", ErrArgument, MinCount, MaxCount, count)
	}
	if depth < MinDepth || depth > MaxDepth {
		return fmt.Errorf("%w: depth must be 1, 2, or 3, got %d", ErrArgument, depth)
	}
	return nil
}

// Build produces the plan. Planning is single-threaded on purpose: the
// ordered result must exist in full before any scheduling begins.
func (p *Planner) Build(count, depth int) (*Plan, error) {
	if err := ValidateShape(count, depth); err != nil {
		return nil, err
	}

	depts := catalog.Departments
	weights := make([]int, len(depts))
	for i, d := range depts {
		weights[i] = d.Weight
	}

	used := make(map[string]bool, count)
	files := make([]PlannedFile, 0, count)
	for i := 0; i < count; i++ {
		r := p.src.Plan(i)

		// Floor guarantee: with enough files to go around, the first
		// len(depts) indexes cover every department in catalog order.
		// Later indexes (and every index on short runs) draw weighted.
		var dept catalog.Department
		if count >= len(depts) && i < len(depts) {
			dept = depts[i]
		} else {
			dept = depts[rng.WeightedIndex(r, weights)]
		}

		f := PlannedFile{Seq: i, Department: dept.Name}
		if depth >= 2 {
			f.Subfolder = dept.Subdirs[r.IntN(len(dept.Subdirs))]
		}
		if depth >= 3 {
			f.Year = catalog.Years[r.IntN(len(catalog.Years))]
		}
		f.Dir = p.relDir(f)

		name, ext, kind := p.gen.Compose(r, dept)
		// The `_<seq>` suffix is legal on both profiles, so no re-sanitize
		// pass is needed; the name cap leaves slack for it.
		key := f.Dir + "\x00" + name
		for used[key] {
			name = naming.Disambiguate(name, i)
			key = f.Dir + "\x00" + name
		}
		used[key] = true

		f.Name = name
		f.Ext = ext
		f.Kind = kind
		files = append(files, f)
	}

	return &Plan{Seed: p.src.Seed(), Depth: depth, Files: files}, nil
}

func (p *Planner) relDir(f PlannedFile) string {
	if f.Subfolder == "" {
		// depth 1: flat layout, no department folders
		return ""
	}
	parts := []string{p.profile.DirName(f.Department), p.profile.DirName(f.Subfolder)}
	if f.Year != "" {
		parts = append(parts, p.profile.DirName(f.Year))
	}
	return filepath.Join(parts...)
}
