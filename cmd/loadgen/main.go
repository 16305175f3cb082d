package main

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/rl1809/product-factory/internal/adapter/handler/pb"
	"github.com/rl1809/product-factory/internal/adapter/notify"
	"github.com/rl1809/product-factory/internal/core/domain"
)

func main() {
	cmd := &cli.Command{
		Name:  "loadgen",
		Usage: "Drive concurrent create and register calls against the catalog server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "grpc-addr", Value: "localhost:50051", Sources: cli.EnvVars("GRPC_ADDR")},
			&cli.StringFlag{Name: "redis-addr", Usage: "Count notices on this Redis; empty skips", Sources: cli.EnvVars("REDIS_ADDR")},
			&cli.StringFlag{Name: "channel", Value: notify.DefaultChannel},
			&cli.IntFlag{Name: "requests", Value: 50},
			&cli.IntFlag{Name: "concurrency", Value: 10},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	totalRequests := int(c.Int("requests"))
	concurrency := int(c.Int("concurrency"))
	if err := validateLoad(totalRequests, concurrency); err != nil {
		return err
	}

	conn, err := grpc.NewClient(c.String("grpc-addr"), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial catalog: %w", err)
	}
	defer conn.Close()
	client := pb.NewCatalogServiceClient(conn)

	// Optionally count notices coming back over Redis
	var noticeCount atomic.Int32
	stopNotices := func() {}
	if addr := c.String("redis-addr"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()

		subCtx, cancel := context.WithCancel(ctx)
		notices, closeSub, err := notify.NewRedisPublisher(rdb, c.String("channel")).Subscribe(subCtx)
		if err != nil {
			cancel()
			return err
		}
		go func() {
			for range notices {
				noticeCount.Add(1)
			}
		}()
		stopNotices = func() {
			closeSub()
			cancel()
		}
	}

	variants := domain.Variants()

	var successCount atomic.Int32
	var mismatchCount atomic.Int32
	var failCount atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		variant := variants[i%len(variants)]
		g.Go(func() error {
			reqCtx := metadata.AppendToOutgoingContext(gctx, "x-request-id", uuid.New().String())

			resp, err := client.CreateProduct(reqCtx, &pb.CreateProductRequest{Variant: variant.String()})
			if err != nil {
				failCount.Add(1)
				return nil
			}

			want, _ := variant.CreateProduct()
			if resp.GetProduct().GetName() != want.Name || resp.GetProduct().GetPrice() != want.PriceText() {
				mismatchCount.Add(1)
			}

			if _, err := client.RegisterProduct(reqCtx, &pb.RegisterProductRequest{Product: resp.GetProduct()}); err != nil {
				failCount.Add(1)
				return nil
			}
			successCount.Add(1)
			return nil
		})
	}

	g.Wait()
	elapsed := time.Since(start)

	// Let in-flight notices arrive
	time.Sleep(500 * time.Millisecond)
	stopNotices()

	fmt.Println("========== LOAD TEST RESULTS ==========")
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Registered:       %d\n", successCount.Load())
	fmt.Printf("Failed:           %d\n", failCount.Load())
	fmt.Printf("Mismatched:       %d\n", mismatchCount.Load())
	fmt.Printf("Notices:          %d\n", noticeCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("=======================================")

	if successCount.Load() == int32(totalRequests) && mismatchCount.Load() == 0 {
		fmt.Println("PASS: every product matched its factory and was registered")
	} else {
		fmt.Println("FAIL: some requests failed or returned unexpected products")
	}

	return nil
}

func validateLoad(requests, concurrency int) error {
	if requests <= 0 {
		return fmt.Errorf("requests must be positive, got %d", requests)
	}
	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	return nil
}
