package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/helioshare/helioshare/common"
	"github.com/helioshare/helioshare/node"
	"github.com/helioshare/helioshare/store/database"
	"github.com/helioshare/helioshare/store/database/backend"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Helioshare node.",
	Run:   runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) {
	db, err := openDatabase()
	if err != nil {
		panic(fmt.Sprintf("Failed to open the db: %v", err))
	}
	defer db.Close()

	params := &node.Params{
		DB: db,
	}
	n := node.NewNode(params)
	n.Start(context.Background())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	n.Stop()

	n.Wait()
}

func openDatabase() (database.Database, error) {
	dataPath := viper.GetString(common.CfgDataPath)
	if dataPath == "" {
		dataPath = cfgPath
	}

	switch backendName := viper.GetString(common.CfgStorageBackend); backendName {
	case "leveldb":
		return backend.NewLDBDatabase(path.Join(dataPath, "db"),
			viper.GetInt(common.CfgStorageLevelDBCacheMB),
			viper.GetInt(common.CfgStorageLevelDBHandles))
	case "badger":
		return backend.NewBadgerDatabase(path.Join(dataPath, "db"))
	case "mongo":
		return backend.NewMongoDatabase(
			viper.GetString(common.CfgStorageMongoURI),
			viper.GetString(common.CfgStorageMongoDatabase))
	case "memdb":
		return backend.NewMemDatabase(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %v", backendName)
	}
}
