package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/boundary-api/consts"
	"github.com/bitmark-inc/boundary-api/share/geojson"
	"github.com/bitmark-inc/boundary-api/store"
)

var (
	configFile    string
	statesFile    string
	districtFiles map[string]string
)

var rootCmd = &cobra.Command{
	Use:   "import-boundary",
	Short: "Import boundary GeoJSON files into mongodb",
	Long:  `Load the state and district boundary files into the boundary_document collection so the api can run with store.driver=mongo.`,
	RunE:  runImport,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "[optional] path of configuration file")
	rootCmd.Flags().StringVar(&statesFile, "states", "", "state boundary file (default from boundary.states)")
	rootCmd.Flags().StringToStringVar(&districtFiles, "district", nil, "district boundary file of a state, e.g. odisha=data/odisha.geojson (repeatable)")
}

func loadConfig() {
	viper.SetConfigType("yaml")
	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			log.WithField("prefix", "init").Warnf("read config file: %s", err)
		}
	}

	viper.SetDefault("boundary.states", consts.DefaultStatesBoundaryFile)
	viper.SetDefault("boundary.districts", consts.DefaultDistrictBoundaryFiles())

	viper.AutomaticEnv()
	viper.SetEnvPrefix("boundary")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func runImport(cmd *cobra.Command, args []string) error {
	loadConfig()

	if statesFile == "" {
		statesFile = viper.GetString("boundary.states")
	}
	if len(districtFiles) == 0 {
		districtFiles = viper.GetStringMapString("boundary.districts")
	}

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		return fmt.Errorf("create mongo client: %w", err)
	}
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer client.Disconnect(ctx)

	registry := store.NewRegistry(statesFile, districtFiles)
	return geojson.ImportBoundaries(ctx, client, viper.GetString("mongo.database"), registry.Layers())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
