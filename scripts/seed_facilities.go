//go:build ignore
// +build ignore

package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
)

type facility struct {
	Name string
	Type string
	Tags map[string]string
	Lat  float64
	Lon  float64
	Area float64
}

func main() {
	output := flag.String("output", "artifacts/ahmedabad_odor_sources_cleaned.csv", "Path for the demo facility dataset")
	flag.Parse()

	// A small hand-picked slice of Ahmedabad: enough to exercise the
	// gate, the ranking and the radius search around Pirana.
	facilities := []facility{
		{"Pirana landfill site", "Polygon", map[string]string{"landuse": "landfill", "operator": "Amdavad Municipal Corporation"}, 22.9876, 72.5891, 840000},
		{"Pirana waste processing", "Point", map[string]string{"amenity": "waste_transfer_station"}, 22.9901, 72.5923, 0},
		{"Vasna sewage treatment plant", "Polygon", map[string]string{"man_made": "wastewater_plant"}, 22.9998, 72.5532, 120000},
		{"Sabarmati thermal power station", "Polygon", map[string]string{"power": "plant", "plant:source": "coal", "plant:output:electricity": "yes"}, 23.0712, 72.5931, 310000},
		{"Naroda industrial estate", "Polygon", map[string]string{"landuse": "industrial", "industrial": "chemical"}, 23.0703, 72.6591, 950000},
		{"Vatva chemical works", "Point", map[string]string{"industrial": "chemical", "man_made": "works"}, 22.9612, 72.6294, 0},
		{"Behrampura slaughterhouse", "Point", map[string]string{"amenity": "slaughterhouse"}, 23.0011, 72.5808, 0},
		{"Navrangpura garden cafe", "Point", map[string]string{"amenity": "cafe"}, 23.0365, 72.5611, 0},
		{"Kankaria lakefront", "Polygon", map[string]string{"landuse": "recreation_ground"}, 23.0063, 72.6031, 700000},
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "type", "tags", "latitude", "longitude", "area_m2"}); err != nil {
		log.Fatalf("Failed to write header: %v", err)
	}

	for _, fac := range facilities {
		tags, err := json.Marshal(fac.Tags)
		if err != nil {
			log.Fatalf("Failed to encode tags for %s: %v", fac.Name, err)
		}
		row := []string{
			fac.Name,
			fac.Type,
			string(tags),
			strconv.FormatFloat(fac.Lat, 'f', -1, 64),
			strconv.FormatFloat(fac.Lon, 'f', -1, 64),
			strconv.FormatFloat(fac.Area, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			log.Fatalf("Failed to write row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatalf("Failed to flush CSV: %v", err)
	}

	log.Printf("Seeded %d facilities into %s", len(facilities), *output)
	log.Println("Next: go run ./cmd/prepare index && go run ./cmd/api")
}
