// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/agency-service/internal/authorization"
	"github.com/canonical/agency-service/internal/logging"
	"github.com/canonical/agency-service/internal/monitoring"
	"github.com/canonical/agency-service/internal/openfga"
	"github.com/canonical/agency-service/internal/tracing"
)

const (
	StoreName = "agency-service"

	storeIDKey = "OPENFGA_STORE_ID"
	modelIDKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaModelOutput struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates the agency relationship model in openfga",
	Long:  `Creates the openfga store if needed and writes the agency/subaccount relationship model to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMap, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfig, _ := cmd.Flags().GetString("kubeconfig")

		out, err := writeFgaModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if configMap != "" {
			if err := storeFgaIDs(cmd.Context(), kubeconfig, configMap, out); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.Printf("ConfigMap %s updated\n", configMap)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		}

		if storeID == "" {
			cmd.Printf("Created store: %s\n", out.StoreID)
		}
		cmd.Printf("Created model: %s\n", out.ModelID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to write the model to, created when empty")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The namespace/name of a configmap receiving the store and model ids")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file, in-cluster config when empty")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func writeFgaModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (*fgaModelOutput, error) {
	logger := logging.NewNoopLogger()
	if verbose {
		logger = logging.NewLogger("debug")
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	fga := openfga.NewClient(
		openfga.NewConfig(u.Scheme, u.Host, storeID, apiToken, "", verbose, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(StoreName, logger), logger),
	)

	if storeID == "" {
		if storeID, err = fga.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}
		if err := fga.SetStoreID(ctx, storeID); err != nil {
			return nil, fmt.Errorf("failed to select store: %w", err)
		}
	}

	model := authorization.NewAuthorizationModelProvider("v0").GetModel()

	modelID, err := fga.WriteModel(ctx, &client.ClientWriteAuthorizationModelRequest{
		TypeDefinitions: model.TypeDefinitions,
		SchemaVersion:   model.SchemaVersion,
		Conditions:      model.Conditions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return &fgaModelOutput{StoreID: storeID, ModelID: modelID}, nil
}

func kubeConfig(path string) (*rest.Config, error) {
	if path != "" {
		return clientcmd.BuildConfigFromFlags("", path)
	}

	if config, err := rest.InClusterConfig(); err == nil {
		return config, nil
	}

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

// storeFgaIDs creates or updates the configmap the serve command reads its
// OPENFGA_* settings from.
func storeFgaIDs(ctx context.Context, kubeconfig, resource string, ids *fgaModelOutput) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource %q, expected namespace/name", resource)
	}

	config, err := kubeConfig(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data:       map[string]string{storeIDKey: ids.StoreID, modelIDKey: ids.ModelID},
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", resource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}
	cm.Data[storeIDKey] = ids.StoreID
	cm.Data[modelIDKey] = ids.ModelID

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", resource, err)
	}
	return nil
}
