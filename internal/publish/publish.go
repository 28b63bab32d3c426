package publish

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/marquee-dev/marquee/internal/config"
	"github.com/marquee-dev/marquee/internal/errors"
)

// Client is the part of the S3 API used for publishing. *s3.Client
// satisfies it.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a publish run.
type Options struct {
	// Bucket is the destination bucket.
	Bucket string

	// Prefix is prepended to every object key.
	Prefix string

	// Region overrides the region from the AWS environment.
	Region string

	// DryRun lists the objects without uploading them.
	DryRun bool

	// OnUpload is called after each object is uploaded (or listed, in a
	// dry run).
	OnUpload func(Object)
}

// Object is one file of the build output and its destination.
type Object struct {
	Key         string
	Path        string
	ContentType string
	Size        int64
}

// Result contains information about a publish run.
type Result struct {
	Bucket   string
	Objects  []Object
	Bytes    int64
	Duration time.Duration
	DryRun   bool
}

// Publisher uploads a build output directory to S3.
type Publisher struct {
	client  Client
	dir     string
	options Options
	logger  *slog.Logger
}

// New creates a publisher for dir. client may be nil for a dry run.
func New(client Client, dir string, options Options) *Publisher {
	options.Prefix = strings.Trim(options.Prefix, "/")
	return &Publisher{
		client:  client,
		dir:     dir,
		options: options,
		logger:  slog.Default().With("component", "publish"),
	}
}

// NewFromConfig creates a publisher for the project's build output. Empty
// fields of options fall back to the publish section of the project
// config. Unless this is a dry run, AWS credentials and region are loaded
// from the environment.
func NewFromConfig(ctx context.Context, cfg *config.Config, options Options) (*Publisher, error) {
	if options.Bucket == "" {
		options.Bucket = cfg.Publish.Bucket
	}
	if options.Prefix == "" {
		options.Prefix = cfg.Publish.Prefix
	}
	if options.Region == "" {
		options.Region = cfg.Publish.Region
	}

	if options.Bucket == "" {
		return nil, errors.New(errors.CodePublishNoBucket)
	}

	if options.DryRun {
		return New(nil, cfg.OutputPath(), options), nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if options.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(options.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.New(errors.CodePublishCredentials).Wrap(err)
	}
	if awsCfg.Region == "" {
		return nil, errors.New(errors.CodePublishCredentials).
			WithDetail("no AWS region configured")
	}

	return New(s3.NewFromConfig(awsCfg), cfg.OutputPath(), options), nil
}

// Plan lists the objects that would be uploaded, ordered by key.
func (p *Publisher) Plan() ([]Object, error) {
	info, err := os.Stat(p.dir)
	if err != nil || !info.IsDir() {
		return nil, errors.New(errors.CodePublishNoOutput).WithDetail(p.dir)
	}

	var objects []Object
	err = filepath.WalkDir(p.dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.dir, file)
		if err != nil {
			return err
		}
		objects = append(objects, Object{
			Key:         Key(p.options.Prefix, filepath.ToSlash(rel)),
			Path:        file,
			ContentType: ContentType(file),
			Size:        info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.New(errors.CodePublishNoOutput).WithDetail(p.dir).Wrap(err)
	}
	if len(objects) == 0 {
		return nil, errors.New(errors.CodePublishNoOutput).
			WithDetail(p.dir + " is empty")
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// Publish uploads every file of the output directory, one at a time.
// The first failed upload stops the run.
func (p *Publisher) Publish(ctx context.Context) (result *Result, err error) {
	ctx, span := otel.Tracer("marquee").Start(ctx, "marquee.publish")
	span.SetAttributes(
		attribute.String("marquee.bucket", p.options.Bucket),
		attribute.Bool("marquee.dry_run", p.options.DryRun),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if p.options.Bucket == "" {
		return nil, errors.New(errors.CodePublishNoBucket)
	}

	start := time.Now()
	objects, err := p.Plan()
	if err != nil {
		return nil, err
	}

	result = &Result{Bucket: p.options.Bucket, DryRun: p.options.DryRun}
	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !p.options.DryRun {
			if err := p.upload(ctx, obj); err != nil {
				return nil, err
			}
		}
		result.Objects = append(result.Objects, obj)
		result.Bytes += obj.Size
		if p.options.OnUpload != nil {
			p.options.OnUpload(obj)
		}
	}
	result.Duration = time.Since(start)

	p.logger.Debug("publish complete",
		"bucket", result.Bucket,
		"objects", len(result.Objects),
		"bytes", result.Bytes,
		"dry_run", result.DryRun,
	)
	return result, nil
}

func (p *Publisher) upload(ctx context.Context, obj Object) error {
	f, err := os.Open(obj.Path)
	if err != nil {
		return errors.New(errors.CodePublishUpload).WithDetail(obj.Key).Wrap(err)
	}
	defer f.Close()

	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.options.Bucket),
		Key:           aws.String(obj.Key),
		Body:          f,
		ContentLength: aws.Int64(obj.Size),
		ContentType:   aws.String(obj.ContentType),
		CacheControl:  aws.String(cacheControl(obj.Key)),
	})
	if err != nil {
		return errors.New(errors.CodePublishUpload).WithDetail(obj.Key).Wrap(err)
	}
	p.logger.Debug("uploaded", "key", obj.Key, "size", obj.Size)
	return nil
}

// Key maps a slash-separated output path to an object key.
func Key(prefix, rel string) string {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return rel
	}
	return prefix + "/" + rel
}

var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".json":  "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".txt":   "text/plain; charset=utf-8",
	".xml":   "application/xml",
}

// ContentType returns the Content-Type stored with a file.
func ContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// HTML is revalidated on every visit so a republished page shows at once.
func cacheControl(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".html", ".htm":
		return "no-cache"
	default:
		return "public, max-age=3600"
	}
}
