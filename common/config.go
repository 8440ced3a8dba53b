package common

import (
	"github.com/spf13/viper"
)

const (
	// CfgConfigPath defines custom config path
	CfgConfigPath = "config.path"
	// CfgDataPath defines custom DB path
	CfgDataPath = "data.path"

	// CfgStorageBackend selects the database backend (leveldb | badger | mongo | memdb)
	CfgStorageBackend = "storage.backend"
	// CfgStorageMongoURI sets the connection URI for the mongo backend
	CfgStorageMongoURI = "storage.mongoURI"
	// CfgStorageMongoDatabase sets the database name for the mongo backend
	CfgStorageMongoDatabase = "storage.mongoDatabase"
	// CfgStorageLevelDBCacheMB sets the leveldb block cache size in megabytes
	CfgStorageLevelDBCacheMB = "storage.leveldbCacheMB"
	// CfgStorageLevelDBHandles sets the leveldb open file handle limit
	CfgStorageLevelDBHandles = "storage.leveldbHandles"

	// CfgLedgerOwner sets the admin owner address of the ledger
	CfgLedgerOwner = "ledger.owner"
	// CfgLedgerPaused starts the ledger with the pause gate engaged
	CfgLedgerPaused = "ledger.paused"

	// CfgMetadataBaseURI sets the base URI for project display resources
	CfgMetadataBaseURI = "metadata.baseURI"
	// CfgMetadataCacheSize sets the size of the metadata LRU cache
	CfgMetadataCacheSize = "metadata.cacheSize"

	// CfgRPCEnabled sets whether to run the RPC service
	CfgRPCEnabled = "rpc.enabled"
	// CfgRPCAddress sets the binding address of the RPC service
	CfgRPCAddress = "rpc.address"
	// CfgRPCPort sets the port of the RPC service
	CfgRPCPort = "rpc.port"
	// CfgRPCMaxConnections limits concurrent connections accepted by the RPC server
	CfgRPCMaxConnections = "rpc.maxConnections"
	// CfgRPCTimeoutSecs sets the request handling timeout in seconds
	CfgRPCTimeoutSecs = "rpc.timeoutSecs"

	// CfgLogLevels sets the log level, e.g. "*:info,rewards:debug"
	CfgLogLevels = "log.levels"
)

// InitialConfig is the default configuration produced by the init command.
const InitialConfig = `# Helioshare configuration
storage:
  backend: leveldb
rpc:
  enabled: true
  port: 17888
`

func init() {
	viper.SetDefault(CfgStorageBackend, "leveldb")
	viper.SetDefault(CfgStorageMongoURI, "mongodb://localhost:27017")
	viper.SetDefault(CfgStorageMongoDatabase, "helioshare")
	viper.SetDefault(CfgStorageLevelDBCacheMB, 256)
	viper.SetDefault(CfgStorageLevelDBHandles, 16)

	viper.SetDefault(CfgLedgerOwner, "")
	viper.SetDefault(CfgLedgerPaused, false)

	viper.SetDefault(CfgMetadataBaseURI, "https://meta.helioshare.io/projects/")
	viper.SetDefault(CfgMetadataCacheSize, 256)

	viper.SetDefault(CfgRPCEnabled, false)
	viper.SetDefault(CfgRPCAddress, "127.0.0.1")
	viper.SetDefault(CfgRPCPort, "17888")
	viper.SetDefault(CfgRPCMaxConnections, 200)
	viper.SetDefault(CfgRPCTimeoutSecs, 60)

	viper.SetDefault(CfgLogLevels, "*:info")
}
