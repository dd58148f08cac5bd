package pinecone

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Metric is the distance function of an index.
type Metric string

const (
	MetricEuclidean  Metric = "euclidean"
	MetricCosine     Metric = "cosine"
	MetricDotproduct Metric = "dotproduct"
)

var validMetrics = []string{
	string(MetricEuclidean),
	string(MetricCosine),
	string(MetricDotproduct),
}

// Cloud is the provider hosting a serverless index.
type Cloud string

const (
	CloudAWS   Cloud = "aws"
	CloudGCP   Cloud = "gcp"
	CloudAzure Cloud = "azure"
)

var validClouds = []string{
	string(CloudAWS),
	string(CloudGCP),
	string(CloudAzure),
}

// PodType is the capacity/performance tier of a pod-based index. It
// serializes on the wire as "<class>.<size>", e.g. "p1.x2".
type PodType struct {
	Class string
	Size  string
}

var (
	validPodClasses = []string{"s1", "p1", "p2"}
	validPodSizes   = []string{"x1", "x2", "x4", "x8"}
)

func (p PodType) String() string {
	return p.Class + "." + p.Size
}

func (p PodType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PodType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	class, size, ok := strings.Cut(s, ".")
	if !ok {
		return fmt.Errorf("pinecone: malformed pod type %q", s)
	}
	p.Class, p.Size = class, size
	return nil
}

func (p PodType) validate() error {
	if err := requireMember("pod_type class", p.Class, validPodClasses); err != nil {
		return err
	}
	return requireMember("pod_type size", p.Size, validPodSizes)
}

// ServerlessSpec describes a serverless index deployment.
type ServerlessSpec struct {
	Cloud  Cloud  `json:"cloud"`
	Region string `json:"region"`
}

// PodSpec describes a pod-based index deployment.
type PodSpec struct {
	// Environment is the legacy region the pods run in. Optional; the
	// configured environment is used when empty.
	Environment string `json:"environment,omitempty"`

	PodType  PodType `json:"pod_type"`
	Pods     int     `json:"pods,omitempty"`
	Replicas int     `json:"replicas,omitempty"`
	Shards   int     `json:"shards,omitempty"`
}

// IndexSpec selects the deployment model of a new index. Exactly one of
// Serverless or Pod must be set.
type IndexSpec struct {
	Serverless *ServerlessSpec `json:"serverless,omitempty"`
	Pod        *PodSpec        `json:"pod,omitempty"`
}

// CreateIndexRequest describes a new index.
type CreateIndexRequest struct {
	Name string `json:"name"`

	// Dimension of stored vectors. Defaults to 384 when zero.
	Dimension int `json:"dimension"`

	// Metric defaults to cosine when empty.
	Metric Metric `json:"metric"`

	// Spec is required: the remote service refuses an index without a
	// deployment model, so its absence is a configuration error caught
	// before any request is issued.
	Spec *IndexSpec `json:"spec"`
}

// ConfigureIndexRequest scales a pod-based index. Only replicas and pod type
// can change after creation.
type ConfigureIndexRequest struct {
	// Replicas, when positive, is the new replica count.
	Replicas int

	// PodType, when non-nil, is the new pod size.
	PodType *PodType
}

// Vector is one upsertable record.
type Vector struct {
	ID       string                 `json:"id"`
	Values   []float32              `json:"values"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// UpsertRequest inserts or overwrites vectors in an index.
type UpsertRequest struct {
	Vectors []Vector `json:"vectors"`

	// Namespace overrides the index reference's default namespace.
	Namespace string `json:"namespace,omitempty"`
}

// QueryRequest is a similarity search against an index.
type QueryRequest struct {
	// Vector is the query embedding.
	Vector []float32

	// TopK is the number of matches to return. Defaults to 5 when zero.
	TopK int

	// IncludeValues and IncludeMetadata control response verbosity.
	IncludeValues   bool
	IncludeMetadata bool

	// Namespace is included in the body only when set.
	Namespace string

	// Filter is a metadata filter map; an empty filter is sent as {}.
	Filter map[string]interface{}
}

// CreateCollectionRequest snapshots a source index into a static collection.
type CreateCollectionRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// IndexDescription is the typed shape of a describe-index payload.
type IndexDescription struct {
	Name      string     `json:"name"`
	Dimension int        `json:"dimension"`
	Metric    Metric     `json:"metric"`
	Host      string     `json:"host"`
	Spec      *IndexSpec `json:"spec,omitempty"`
	Status    struct {
		Ready bool   `json:"ready"`
		State string `json:"state"`
	} `json:"status"`
}

// CollectionDescription is the typed shape of a describe-collection payload.
type CollectionDescription struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	Status      string `json:"status"`
	Dimension   int    `json:"dimension"`
	VectorCount int64  `json:"vector_count"`
	Environment string `json:"environment"`
}

// NamespaceStats is the per-namespace section of an index-stats payload.
type NamespaceStats struct {
	VectorCount int64 `json:"vectorCount"`
}

// IndexStats is the typed shape of a describe-index-stats payload.
type IndexStats struct {
	Namespaces       map[string]NamespaceStats `json:"namespaces"`
	Dimension        int                       `json:"dimension"`
	IndexFullness    float64                   `json:"indexFullness"`
	TotalVectorCount int64                     `json:"totalVectorCount"`
}
