package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
}

type PublisherConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
