package exportsvc

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/Arescoreadmin/ares-core/internal/entrylog"
	"github.com/Arescoreadmin/ares-core/internal/runtime"
	"github.com/Arescoreadmin/ares-core/internal/uploader"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// Artifact is one rendered output of an export run.
type Artifact struct {
	Name      string `json:"name"`
	Format    string `json:"format"`
	SHA256    string `json:"sha256"`
	Signature string `json:"signature,omitempty"`

	data []byte
}

// Bytes returns the rendered artifact content.
func (a Artifact) Bytes() []byte { return a.data }

// Result summarizes a completed export run. UploadError is set when the
// bundle was written locally but the transfer to the object store failed;
// the local artifacts remain valid and re-uploadable.
type Result struct {
	Version     string            `json:"version"`
	CreatedAt   time.Time         `json:"created_at"`
	Dir         string            `json:"dir"`
	Artifacts   []Artifact        `json:"artifacts"`
	Files       []string          `json:"files"`
	BundleFile  string            `json:"bundle_file"`
	Integrity   map[string]string `json:"integrity"`
	Uploaded    bool              `json:"uploaded"`
	UploadError string            `json:"upload_error,omitempty"`
}

// Artifact returns the artifact rendered in the given format.
func (r *Result) Artifact(format string) (Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Format == format {
			return a, true
		}
	}
	return Artifact{}, false
}

// Pipeline renders, hashes, signs, bundles, and optionally uploads snapshots
// of the entry store.
type Pipeline struct {
	rt            *runtime.Runtime
	logger        logpkg.Logger
	exportDir     string
	signingKey    []byte
	up            *uploader.Client
	retentionDays int

	now func() time.Time
}

// New returns a Pipeline using a default logger.
func New(rt *runtime.Runtime) *Pipeline {
	return NewWithLogger(rt, nil)
}

// NewWithLogger constructs the pipeline from the runtime configuration.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Pipeline {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("export"))
	}
	cfg := rt.Config()
	p := &Pipeline{
		rt:            rt,
		logger:        logger,
		exportDir:     cfg.ResolvedExportDir(),
		retentionDays: cfg.Upload.RetentionDays,
		now:           time.Now,
	}
	if cfg.SigningKey != "" {
		p.signingKey = []byte(cfg.SigningKey)
	}
	if cfg.UploadEnabled() {
		p.up = uploader.New(cfg.Upload.Endpoint, cfg.Upload.Bucket, logger)
	}
	return p
}

// Run executes one export. Rendering, hashing, signing, or bundling failures
// abort with *ExportError; a failed upload is recorded on the Result instead
// of failing the run.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	entries, err := p.rt.Store().All()
	if err != nil {
		// snapshot failures keep their storage identity
		return nil, err
	}
	createdAt := p.now().UTC()

	if err := os.MkdirAll(p.exportDir, 0o755); err != nil {
		return nil, &ExportError{Stage: "prepare", Err: err}
	}
	version, dir, err := reserveVersion(p.exportDir, createdAt)
	if err != nil {
		return nil, &ExportError{Stage: "version", Err: err}
	}

	artifacts, members, err := p.renderAll(entries, dir)
	if err != nil {
		return nil, err
	}

	manifest := Manifest{Version: version, CreatedAt: createdAt, Files: memberNames(members)}
	manifestJSON, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, &ExportError{Stage: "bundle", Err: err}
	}
	members = append(members, memberFile{name: "manifest.json", data: manifestJSON})
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), manifestJSON, 0o644); err != nil {
		return nil, &ExportError{Stage: "bundle", Err: err}
	}

	bundle, err := buildBundle(members, createdAt)
	if err != nil {
		return nil, &ExportError{Stage: "bundle", Err: err}
	}
	bundleName := "bundle.tar.gz"
	if err := os.WriteFile(filepath.Join(dir, bundleName), bundle, 0o644); err != nil {
		return nil, &ExportError{Stage: "bundle", Err: err}
	}
	bundleDigest := digestHex(bundle)
	if err := os.WriteFile(filepath.Join(dir, bundleName+".sha256"), []byte(bundleDigest), 0o644); err != nil {
		return nil, &ExportError{Stage: "digest", Err: err}
	}

	res := &Result{
		Version:    version,
		CreatedAt:  createdAt,
		Dir:        dir,
		Artifacts:  artifacts,
		Files:      memberNames(members),
		BundleFile: bundleName,
		Integrity:  map[string]string{"sha256": bundleDigest},
	}

	if p.up != nil {
		if err := p.upload(ctx, version, members, bundleName, bundle, bundleDigest, createdAt); err != nil {
			res.UploadError = err.Error()
			p.logger.Warn("bundle upload failed; local artifacts remain valid",
				logpkg.Str("version", version), logpkg.Err(err))
		} else {
			res.Uploaded = true
		}
	}

	p.logger.Info("export complete",
		logpkg.Str("version", version),
		logpkg.Int("entries", len(entries)),
		logpkg.Bool("signed", p.signingKey != nil),
		logpkg.Bool("uploaded", res.Uploaded),
	)
	return res, nil
}

// renderAll renders each configured format and writes the artifact, its
// digest sidecar, and (with a signing key) its signature sidecar.
func (p *Pipeline) renderAll(entries []entrylog.Entry, dir string) ([]Artifact, []memberFile, error) {
	type renderer struct {
		name   string
		format string
		fn     func([]entrylog.Entry) ([]byte, error)
	}
	renderers := []renderer{
		{name: "logs.csv", format: FormatCSV, fn: renderCSV},
		{name: "logs.txt", format: FormatText, fn: renderText},
	}

	var artifacts []Artifact
	var members []memberFile
	for _, r := range renderers {
		data, err := r.fn(entries)
		if err != nil {
			return nil, nil, &ExportError{Stage: "render", Err: err}
		}
		if err := os.WriteFile(filepath.Join(dir, r.name), data, 0o644); err != nil {
			return nil, nil, &ExportError{Stage: "render", Err: err}
		}
		members = append(members, memberFile{name: r.name, data: data})

		digest := digestHex(data)
		if err := os.WriteFile(filepath.Join(dir, r.name+".sha256"), []byte(digest), 0o644); err != nil {
			return nil, nil, &ExportError{Stage: "digest", Err: err}
		}
		members = append(members, memberFile{name: r.name + ".sha256", data: []byte(digest)})

		a := Artifact{Name: r.name, Format: r.format, SHA256: digest, data: data}
		if p.signingKey != nil {
			sig := signHex(p.signingKey, data)
			if err := os.WriteFile(filepath.Join(dir, r.name+".sig"), []byte(sig), 0o644); err != nil {
				return nil, nil, &ExportError{Stage: "sign", Err: err}
			}
			members = append(members, memberFile{name: r.name + ".sig", data: []byte(sig)})
			a.Signature = sig
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, members, nil
}

func (p *Pipeline) upload(ctx context.Context, version string, members []memberFile, bundleName string, bundle []byte, bundleDigest string, createdAt time.Time) error {
	var retainUntil time.Time
	if p.retentionDays > 0 {
		retainUntil = createdAt.Add(time.Duration(p.retentionDays) * 24 * time.Hour)
	}
	for _, m := range members {
		if err := p.up.Put(ctx, version+"/"+m.name, m.data, contentTypeFor(m.name), retainUntil); err != nil {
			return err
		}
	}
	if err := p.up.Put(ctx, version+"/"+bundleName, bundle, "application/gzip", retainUntil); err != nil {
		return err
	}
	return p.up.Put(ctx, version+"/"+bundleName+".sha256", []byte(bundleDigest), "text/plain", retainUntil)
}

func contentTypeFor(name string) string {
	switch filepath.Ext(name) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "text/plain"
	}
}

func memberNames(members []memberFile) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.name
	}
	return names
}
