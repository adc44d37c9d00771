package azure

import (
	"context"
	"fmt"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/kbukum/cloudkit/cloud"
	"github.com/kbukum/cloudkit/config"
	"github.com/kbukum/cloudkit/logger"
)

// A syntactically valid connection string; the key is base64 but not a real
// credential. Client construction does not dial out.
const testBlobConnString = "DefaultEndpointsProtocol=https;AccountName=testacct;AccountKey=dGVzdA==;EndpointSuffix=core.windows.net"

const testBusConnString = "Endpoint=sb://testns.servicebus.windows.net/;SharedAccessKeyName=RootManageSharedAccessKey;SharedAccessKey=dGVzdA=="

func newService(t *testing.T, azureSection map[string]any) *Service {
	t.Helper()
	cfg, err := cloud.Resolve(config.NewMapSettings(map[string]any{
		"cloud": map[string]any{
			"provider": "azure",
			"azure":    azureSection,
		},
	}))
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	return New(cfg, logger.Nop())
}

func TestStorageClient(t *testing.T) {
	t.Run("builds a blob client from the connection string", func(t *testing.T) {
		svc := newService(t, map[string]any{"connection_string": testBlobConnString})

		raw := svc.StorageClient(context.Background())
		if _, ok := raw.(*azblob.Client); !ok {
			t.Fatalf("got %T, want *azblob.Client", raw)
		}
	})

	t.Run("absent without a connection string", func(t *testing.T) {
		svc := newService(t, map[string]any{"subscription_id": "sub"})
		if svc.StorageClient(context.Background()) != nil {
			t.Error("expected nil client")
		}
	})

	t.Run("malformed connection string degrades to absence", func(t *testing.T) {
		svc := newService(t, map[string]any{"connection_string": "not-a-connection-string"})
		if svc.StorageClient(context.Background()) != nil {
			t.Error("expected nil client")
		}
	})
}

func TestCacheClient(t *testing.T) {
	t.Run("absent without a subscription id", func(t *testing.T) {
		svc := newService(t, map[string]any{"connection_string": testBlobConnString})
		if svc.CacheClient(context.Background()) != nil {
			t.Error("expected nil client")
		}
	})
}

func TestQueueClient(t *testing.T) {
	t.Run("builds a service bus client from the connection string", func(t *testing.T) {
		svc := newService(t, map[string]any{"connection_string": testBusConnString})

		raw := svc.QueueClient(context.Background())
		if _, ok := raw.(*azservicebus.Client); !ok {
			t.Fatalf("got %T, want *azservicebus.Client", raw)
		}
	})
}

func TestEmptyAzureConfig(t *testing.T) {
	svc := newService(t, map[string]any{})
	ctx := context.Background()

	if svc.StorageClient(ctx) != nil || svc.CacheClient(ctx) != nil || svc.QueueClient(ctx) != nil {
		t.Error("an empty azure section must yield no clients")
	}
}

func TestProbeFailure(t *testing.T) {
	orig := Probe
	Probe = func() error { return fmt.Errorf("sdk unavailable") }
	defer func() { Probe = orig }()

	svc := newService(t, map[string]any{"connection_string": testBlobConnString})
	if svc.StorageClient(context.Background()) != nil {
		t.Error("expected nil client when probe fails")
	}
}
