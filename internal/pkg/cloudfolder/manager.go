package cloudfolder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

// ErrNotConfigured is returned when folder creation is requested but the
// storage backend is disabled or missing credentials.
var ErrNotConfigured = errors.New("cloud folder storage is not configured")

// VendorSubfolders and ProjectSubfolders are the standard document layout
// created under every new record folder.
var (
	VendorSubfolders  = []string{"Contracts", "Documents", "Communications", "Invoices"}
	ProjectSubfolders = []string{"Contracts", "Deliverables", "Meeting Notes", "Documentation"}
)

// Structure describes a created folder tree in the document store.
type Structure struct {
	FolderID   string            // object key prefix of the root folder
	FolderLink string            // browsable URL of the root folder
	Subfolders map[string]string // subfolder name -> object key prefix
}

// Manager creates document folder structures for new records. Creation is
// best effort: callers treat a failure as a warning, never as a reason to
// reject the record itself.
type Manager interface {
	IsConfigured() bool
	CreateVendorFolders(ctx context.Context, vendorName string) (*Structure, error)
	CreateProjectFolders(ctx context.Context, projectName, parentID string) (*Structure, error)
}

// S3Manager creates folder structures as zero-byte prefix objects in an
// S3 or S3-compatible bucket.
type S3Manager struct {
	s3Client *s3.Client
	config   *Config
}

// NewS3Manager builds a manager from the loaded configuration. A disabled
// configuration returns ErrNotConfigured.
func NewS3Manager(cfg *Config) (*S3Manager, error) {
	if !cfg.IsEnabled() {
		return nil, ErrNotConfigured
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		}
	})

	log.Infof("[CloudFolder] initialized S3 client for bucket: %s", cfg.GetBucketName())
	return &S3Manager{s3Client: s3Client, config: cfg}, nil
}

func (m *S3Manager) IsConfigured() bool {
	return m != nil && m.config.IsEnabled()
}

// CreateVendorFolders creates the standard vendor document tree under the
// vendors/ prefix.
func (m *S3Manager) CreateVendorFolders(ctx context.Context, vendorName string) (*Structure, error) {
	return m.createTree(ctx, "vendors/"+sanitizeName(vendorName)+"/", VendorSubfolders)
}

// CreateProjectFolders creates the standard project document tree. When
// parentID names an existing vendor folder the project tree nests under it,
// otherwise it lives under the top-level projects/ prefix.
func (m *S3Manager) CreateProjectFolders(ctx context.Context, projectName, parentID string) (*Structure, error) {
	root := "projects/"
	if parentID != "" {
		root = strings.TrimSuffix(parentID, "/") + "/projects/"
	}
	return m.createTree(ctx, root+sanitizeName(projectName)+"/", ProjectSubfolders)
}

func (m *S3Manager) createTree(ctx context.Context, rootPrefix string, subfolders []string) (*Structure, error) {
	if !m.IsConfigured() {
		return nil, ErrNotConfigured
	}

	if err := m.putPrefix(ctx, rootPrefix); err != nil {
		return nil, err
	}

	structure := &Structure{
		FolderID:   rootPrefix,
		FolderLink: m.folderLink(rootPrefix),
		Subfolders: make(map[string]string, len(subfolders)),
	}
	for _, name := range subfolders {
		key := rootPrefix + name + "/"
		if err := m.putPrefix(ctx, key); err != nil {
			return nil, err
		}
		structure.Subfolders[name] = key
	}

	log.Infof("[CloudFolder] created folder tree at s3://%s/%s", m.config.GetBucketName(), rootPrefix)
	return structure, nil
}

// putPrefix writes a zero-byte object whose key ends in a slash, which the
// usual S3 browsers display as a folder.
func (m *S3Manager) putPrefix(ctx context.Context, key string) error {
	_, err := m.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(m.config.GetBucketName()),
		Key:    aws.String(key),
		Body:   strings.NewReader(""),
	})
	if err != nil {
		return fmt.Errorf("failed to create folder %s: %w", key, err)
	}
	return nil
}

func (m *S3Manager) folderLink(prefix string) string {
	if m.config.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(m.config.EndpointURL, "/"), m.config.GetBucketName(), prefix)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.config.GetBucketName(), m.config.Region, prefix)
}

// sanitizeName turns a record name into a safe key segment.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "-", "\\", "-", "#", "", "?", "", "%", "")
	name = replacer.Replace(name)
	if name == "" {
		name = "untitled"
	}
	return name
}

// Disabled is the Manager used when no storage backend is configured.
// Every creation attempt reports ErrNotConfigured.
type Disabled struct{}

func (Disabled) IsConfigured() bool { return false }

func (Disabled) CreateVendorFolders(context.Context, string) (*Structure, error) {
	return nil, ErrNotConfigured
}

func (Disabled) CreateProjectFolders(context.Context, string, string) (*Structure, error) {
	return nil, ErrNotConfigured
}

// NewManager loads the configuration and returns the appropriate Manager.
// Misconfiguration degrades to the disabled manager with a warning so the
// application keeps working without document storage.
func NewManager() Manager {
	cfg, err := LoadConfig()
	if err != nil {
		log.Warnf("[CloudFolder] %v, folder creation disabled", err)
		return Disabled{}
	}
	if !cfg.IsEnabled() {
		return Disabled{}
	}
	mgr, err := NewS3Manager(cfg)
	if err != nil {
		log.Warnf("[CloudFolder] %v, folder creation disabled", err)
		return Disabled{}
	}
	return mgr
}
