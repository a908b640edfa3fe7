package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	RedisAddr   string `env:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPass   string `env:"REDIS_PASSWORD"`
	JWTSecret   string `env:"JWT_SECRET"`
	Env         string `env:"APP_ENV" default:"dev"`

	// Listing image storage. Uploads go to UploadDir when S3Bucket is empty.
	UploadDir   string `env:"UPLOAD_DIR" default:"public/uploads"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION" default:"us-east-1"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
}
