package sqlinline

const QInsertUser = `--sql 6479dc14-15b6-4348-b643-668c72772c66
insert into users(id, email, name, properties, created_at)
values (gen_random_uuid(), $1::text, $2::text, coalesce($3::jsonb, '{}'::jsonb), now())
on conflict (email) do nothing
returning id;
`

const QGetUserByEmail = `--sql 8ef04ff6-dbe1-41fe-bef0-4f04841b1ef9
select id, email, name, properties, created_at
from users
where email = $1::text;
`

const QUpdateUserName = `--sql 0021324f-1bd4-4907-a85a-ec76662a5c95
update users set name = $2::text
where email = $1::text;
`
