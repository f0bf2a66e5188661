package clp

const bashCompletionTemplate = `# bash completion for %s

_%s_clp_complete()
{
    local cur out directive
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    out=$(%s __complete "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null) || return

    # last line is ":<directive>", the rest are candidates
    directive="${out##*:}"
    out="${out%:*}"

    (( directive & 1 )) && return

    while IFS= read -r line; do
        [[ -n "$line" && "$line" == "$cur"* ]] && COMPREPLY+=("$line")
    done <<< "$out"

    if (( ! (directive & 4) )) && [ ${#COMPREPLY[@]} -eq 0 ]; then
        COMPREPLY=($(compgen -f -- "$cur"))
    fi
    (( directive & 2 )) && compopt -o nospace
}

complete -o default -F _%s_clp_complete %s
`
