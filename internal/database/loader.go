package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dbsmedya/gogeomine/internal/config"
	"github.com/dbsmedya/gogeomine/internal/sqlutil"
	"github.com/dbsmedya/gogeomine/internal/types"
)

// LoadTransactions reads one row per item occurrence and groups consecutive
// rows sharing a transaction key into a transaction. Rows are ordered by
// the transaction column and, when configured, the position column, which
// fixes item order inside a transaction.
func LoadTransactions(ctx context.Context, db *sql.DB, cfg config.TransactionTableConfig) (types.Database, error) {
	orderBy := []string{cfg.TransactionColumn}
	if cfg.PositionColumn != "" {
		orderBy = append(orderBy, cfg.PositionColumn)
	}

	query, err := sqlutil.BuildSelect(cfg.Table,
		[]string{cfg.TransactionColumn, cfg.ItemColumn, cfg.ProbabilityColumn},
		orderBy,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid transactions table config: %w", err)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var result types.Database
	var current types.Transaction
	var currentKey string
	started := false
	rowNum := 0

	for rows.Next() {
		rowNum++
		var key, item string
		var raw interface{}
		if err := rows.Scan(&key, &item, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row %d: %w", rowNum, err)
		}

		p, err := types.ToFloat64(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d (transaction %s, item %s): %w", rowNum, key, item, err)
		}
		if !types.ValidProbability(p) {
			return nil, fmt.Errorf("row %d (transaction %s, item %s): probability %v outside (0, 1]",
				rowNum, key, item, p)
		}

		if !started || key != currentKey {
			if started {
				result = append(result, current)
			}
			current = nil
			currentKey = key
			started = true
		}
		current = append(current, types.NewItem(item, p))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	if started {
		result = append(result, current)
	}

	return result, nil
}

// LoadNeighbours reads one row per item -> neighbour edge.
func LoadNeighbours(ctx context.Context, db *sql.DB, cfg config.NeighbourTableConfig) (map[string][]string, error) {
	query, err := sqlutil.BuildSelect(cfg.Table,
		[]string{cfg.ItemColumn, cfg.NeighbourColumn},
		[]string{cfg.ItemColumn, cfg.NeighbourColumn},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid neighbours table config: %w", err)
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query neighbours: %w", err)
	}
	defer rows.Close()

	relation := make(map[string][]string)
	for rows.Next() {
		var item string
		var neighbour sql.NullString
		if err := rows.Scan(&item, &neighbour); err != nil {
			return nil, fmt.Errorf("failed to scan neighbour row: %w", err)
		}
		if _, ok := relation[item]; !ok {
			relation[item] = []string{}
		}
		if neighbour.Valid && neighbour.String != "" {
			relation[item] = append(relation[item], neighbour.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating neighbour rows: %w", err)
	}

	return relation, nil
}
