// Command artifact validates a (model, scaler) pair on disk and prints
// a structural summary. Run it against freshly exported training output
// before uploading the pair to storage.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/naz99/Autism-App/internal/artifact"
)

func main() {
	var (
		modelPath  = flag.String("model", "models/autism_rf.json", "Path to the classifier blob")
		scalerPath = flag.String("scaler", "models/scaler.json", "Path to the scaler blob")
	)
	flag.Parse()

	model, err := os.ReadFile(*modelPath)
	if err != nil {
		log.Fatalf("failed to read model: %v", err)
	}
	scaler, err := os.ReadFile(*scalerPath)
	if err != nil {
		log.Fatalf("failed to read scaler: %v", err)
	}

	art, err := artifact.Decode(model, scaler)
	if err != nil {
		log.Fatalf("artifact rejected: %v", err)
	}

	nodes := 0
	for i := range art.Forest.Trees {
		nodes += len(art.Forest.Trees[i].Feature)
	}

	fmt.Printf("version:  %s\n", art.Version())
	fmt.Printf("trees:    %d (%d nodes)\n", len(art.Forest.Trees), nodes)
	fmt.Printf("features: %s\n", strings.Join(art.Forest.FeatureNames, ", "))
}
