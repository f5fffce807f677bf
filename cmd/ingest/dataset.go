package main

import (
	"context"
	"io"

	"fitbot/internal/domain/entity"
	"fitbot/internal/infra/knowledge/loader"
	"fitbot/internal/infra/knowledge/source"
	"fitbot/internal/util"

	"github.com/pkg/errors"
)

type dataset struct {
	collection entity.Collection
	location   string
	load       func(io.Reader) (*loader.Result, error)
}

type parsedDataset struct {
	*loader.Result

	checksum string
	size     int64
}

func selectDatasets(exercises, foods string) ([]dataset, error) {
	var datasets []dataset
	if exercises != "" {
		datasets = append(datasets, dataset{
			collection: entity.CollectionExercises,
			location:   exercises,
			load:       loader.LoadExercises,
		})
	}
	if foods != "" {
		datasets = append(datasets, dataset{
			collection: entity.CollectionFoods,
			location:   foods,
			load:       loader.LoadFoods,
		})
	}

	if len(datasets) == 0 {
		return nil, errors.New("at least one of --exercises or --foods is required")
	}

	return datasets, nil
}

func (d dataset) parse(ctx context.Context) (*parsedDataset, error) {
	reader, err := source.Open(ctx, d.location)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	digest := util.NewSourceDigest()
	result, err := d.load(digest.Wrap(reader))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", d.location)
	}

	return &parsedDataset{
		Result:   result,
		checksum: digest.Checksum(),
		size:     digest.Size(),
	}, nil
}
