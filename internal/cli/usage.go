package cli

// usageText is printed when no model id is given. It is the only output
// ever written to stdout; diagnostics go to the logger on stderr.
const usageText = `
LLM Health Monitor - Check Model Health Status

DESCRIPTION:
    llmhealth simulates starting an interview with a Large Language Model
    (LLM) by making a test completion request. It checks model availability
    and latency without contacting any real endpoint.

USAGE:
    llmhealth <model_id>

ARGUMENTS:
    model_id    The ID of the model to test (e.g., gpt-4o, claude-3-opus)

RETURN CODES:
    0    Success - Interview initiated successfully
    1    Failure - Model call failed (due to availability rate)
    2    Error - Model not found or no model ID given
    3    Error - Models configuration could not be loaded

ENVIRONMENT:
    MODELS_PATH             Override the models.json location
    HEALTH_SEED             Seed the availability roll for reproducible runs
    HEALTH_DEBUG            Set to 1 for diagnostic logging on stderr
    HEALTH_HISTORY_FILE     Keep probe history in a JSON file
    REDIS_URL               Keep probe history in Redis instead

AVAILABLE MODELS:
    Models are loaded from models.json. Common model IDs include:
    - gpt-4o, gpt-4, gpt-3.5-turbo
    - claude-3-opus, claude-4-sonnet, claude-3-haiku
    - gemini-pro, llama-2-70b, palm-2, mistral-large

EXAMPLES:
    llmhealth gpt-4o
    llmhealth claude-3-opus
`
