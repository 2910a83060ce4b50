// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and view types for the API.

# Request Types

  - AnswerRequest: value (pointer so a missing value is distinguishable from 0)

# Response Types

  - CreateSessionResponse: session_id, session_key, state
  - SubmitResponse: state, result
  - CatalogResponse: scale, scale_steps, total_items, maximum, domains
  - DailyTasksResponse: default, tasks
  - ErrorResponse: error, message

# View Types

  - SessionState: phase, cursor, progress, current item, answers, guards
  - CurrentItem: the item under the cursor and its answer
  - ExportSnapshot: id, share_slug, computed_at, archived, result

Score results are survey.ScoreResult values and are serialized as-is:

	{
	  "total": 20, "maximum": 40, "percentage": 50, "interpretation": "Moderate",
	  "domains": [{"domain": "Meaning", "sum": 4, "count": 2, "maximum": 8,
	               "percentage": 50, "interpretation": "Moderate"}, ...]
	}
*/
package models
