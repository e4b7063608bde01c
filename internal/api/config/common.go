package config

// Config 配置主体
type Config struct {
	Server                ServerConfig             `mapstructure:"server"`
	DB                    DBConfig                 `mapstructure:"database"`
	Redis                 RedisConfig              `mapstructure:"redis"`
	Logstash              LogstashConfig           `mapstructure:"logstash"`
	MinIO                 MinIOConfig              `mapstructure:"minio"`
	Kafka                 KafkaConfig              `mapstructure:"kafka"`
	KafkaSnapshotConsumer KafkaSnapshotConsumer    `mapstructure:"kafka_snapshot_consumer"`
	Connector             ConnectorConfig          `mapstructure:"connector"`
	Snapshot              SnapshotConfig           `mapstructure:"snapshot"`
	OAuth                 map[string]OAuthProvider `mapstructure:"oauth"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 远程日志配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	ThumbnailBucket  string `mapstructure:"thumbnail_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	ExternalUseSSL   bool   `mapstructure:"external_use_ssl"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaSnapshotConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ConnectorConfig 平台连接器配置
type ConnectorConfig struct {
	YouTubeAPIKey  string `mapstructure:"youtube_api_key"`
	InstagramToken string `mapstructure:"instagram_token"`
	UserAgent      string `mapstructure:"user_agent"`
	EnableBrowser  bool   `mapstructure:"enable_browser"`
}

// SnapshotConfig 采样任务配置
type SnapshotConfig struct {
	Cron string `mapstructure:"cron"`
}

// OAuthProvider 第三方登录提供方配置
type OAuthProvider struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenURL     string `mapstructure:"token_url"`
	UserInfoURL  string `mapstructure:"user_info_url"`
	RedirectURL  string `mapstructure:"redirect_url"`
}
