package clp

const zshCompletionTemplate = `#compdef %s

_%s_clp_complete() {
    local out directive
    local -a lines candidates compadd_opts

    out=$(%s __complete "${(@)words[2,CURRENT]}" 2>/dev/null) || return

    lines=("${(@f)out}")
    directive="${lines[-1]#:}"
    candidates=("${(@)lines[1,-2]}")

    (( directive & 1 )) && return
    (( directive & 2 )) && compadd_opts+=(-S '')

    (( ${#candidates} )) && compadd "${compadd_opts[@]}" -a candidates
    (( directive & 4 )) || _files
}

compdef _%s_clp_complete %s
`
