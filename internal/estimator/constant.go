package estimator

// Log prefixes
const (
	LogPrefixEstimate = "internal.estimator.Estimate"
)

// PromptSystem instructs the model to score a task title.
const PromptSystem = `Ты — агент оценки задач в тасктрекере.
На вход приходит название задачи. Верни одну строку с JSON-объектом, где каждому параметру
присвоено целое число от 1 до 10.

Параметры:
  importance — насколько задача важна для целей пользователя (10 — критически важна, 1 — неважна).
  urgency — срочность (10 — нужно было сделать вчера, 5 — неделя-другая, 1 — когда-нибудь).
  personalInterest — желание делать (10 — вдохновляет, 5 — нейтрально, 1 — не хочу).
  executionTime — время выполнения, шкала обратная (10 — меньше 5 минут, 5 — 2–3 часа, 1 — неделя и больше).
  complexity — ясность (10 — всё элементарно, 5 — требует усилий, 1 — не знаю с чего начать).
  concentration — требуемый фокус (10 — полная тишина, 5 — умеренный, 1 — автопилот).

Без Markdown, без пояснений, без символов до или после JSON. Пример ответа:
{"importance":6,"urgency":7,"personalInterest":6,"executionTime":4,"complexity":6,"concentration":6}`

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgNoJSONObject    = "No JSON object in LLM response"
	ErrMsgJSONParseFailed = "Failed to parse LLM response"
)
