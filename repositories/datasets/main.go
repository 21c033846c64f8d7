package datasetsRepo

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"genobrowse/api/models"
	"genobrowse/api/models/constants"
	columnKind "genobrowse/api/models/constants/column-kind"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/sync/errgroup"
)

// a string column with at most this many distinct values is treated
// as categorical
const categoryCardinalityCap = 25

// Store is the process-wide dataset registry: populated once at startup,
// read-only afterwards, shared across concurrent requests without locking.
type Store struct {
	datasets map[string]*models.Dataset
}

func NewStore(datasets ...*models.Dataset) *Store {
	store := &Store{datasets: map[string]*models.Dataset{}}
	for _, dataset := range datasets {
		store.datasets[dataset.Name] = dataset
	}
	return store
}

// Load reads every source named by the manifest, concurrently. A single
// missing or malformed source fails the whole load; there is no partial or
// degraded registry.
func Load(manifest *models.DatasetManifest) (*Store, error) {
	store := &Store{datasets: map[string]*models.Dataset{}}

	var mu sync.Mutex
	var g errgroup.Group
	for _, source := range manifest.Datasets {
		source := source
		g.Go(func() error {
			f, err := os.Open(source.Path)
			if err != nil {
				return fmt.Errorf("dataset %s : %v", source.Name, err)
			}
			defer f.Close()

			dataset, err := ReadDataset(source.Name, source.Title, f, source.ColumnKinds)
			if err != nil {
				return fmt.Errorf("dataset %s : %v", source.Name, err)
			}

			mu.Lock()
			store.datasets[source.Name] = dataset
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return store, nil
}

// ReadDataset parses one delimited-text source into an immutable Dataset.
// The first row must be a header naming the columns. Cells keep their exact
// source text (so a filtered export reproduces the input byte for byte);
// the gota dataframe is only consulted for typed column inference.
func ReadDataset(name string, title string, r io.Reader, kindOverrides map[string]string) (*models.Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	df := dataframe.ReadCSV(bytes.NewReader(raw),
		dataframe.WithDelimiter(','),
		dataframe.HasHeader(true))
	if df.Err != nil {
		return nil, df.Err
	}

	columns := df.Names()
	if len(columns) == 0 {
		return nil, fmt.Errorf("no header row")
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	// first record is the header itself
	rows := make([]models.Row, 0, len(records))
	for n, record := range records {
		if n == 0 {
			continue
		}

		row := models.Row{}
		for i, column := range columns {
			if i < len(record) {
				row[column] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return &models.Dataset{
		Name:    name,
		Title:   title,
		Columns: columns,
		Schema:  inferSchema(columns, df.Types(), rows, kindOverrides),
		Rows:    rows,
	}, nil
}

func (s *Store) Names() []string {
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) Dataset(name string) (*models.Dataset, bool) {
	dataset, ok := s.datasets[name]
	return dataset, ok
}

// -- schema inference

func inferSchema(columns []string, types []series.Type, rows []models.Row, kindOverrides map[string]string) models.Schema {
	schema := models.Schema{}
	for i, column := range columns {
		if kindOverrides != nil {
			if kind := columnKind.CastToColumnKind(kindOverrides[column]); kind != columnKind.Unknown {
				schema[column] = kind
				continue
			}
		}

		var kind constants.ColumnKind
		switch types[i] {
		case series.Int:
			kind = columnKind.Integer
		case series.Float:
			kind = columnKind.Float
		case series.Bool:
			kind = columnKind.Category
		default:
			kind = classifyStringColumn(column, rows)
		}
		schema[column] = kind
	}
	return schema
}

// classifyStringColumn decides between flag (URL-ish presence columns),
// category (low cardinality) and free-text string.
func classifyStringColumn(column string, rows []models.Row) constants.ColumnKind {
	distinct := map[string]bool{}
	sawValue := false
	for _, row := range rows {
		value := strings.TrimSpace(row[column])
		if value == "" || value == constants.NoValuePlaceholder {
			continue
		}
		sawValue = true
		if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
			return columnKind.Flag
		}
		distinct[value] = true
	}

	if sawValue && len(distinct) <= categoryCardinalityCap {
		return columnKind.Category
	}
	return columnKind.String
}
